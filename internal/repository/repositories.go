package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

// Repositories bundles every record accessor. The stats repository runs on a
// separate sqlx lane because its grouped aggregation queries map rows to
// tagged structs; everything else uses the pgx pool.
type Repositories struct {
	AccountRepo  AccountRepository
	ClientRepo   ClientRepository
	ProjectRepo  ProjectRepository
	TimelineRepo TimelineRepository
	MessageRepo  MessageRepository
	DocumentRepo DocumentRepository
	ServiceRepo  ServiceRepository
	InquiryRepo  InquiryRepository
	TeamRepo     TeamRepository
	PaymentRepo  PaymentRepository
	SettingsRepo SettingsRepository
	StatsRepo    StatsRepository
}

// NewRepositories creates PostgreSQL-backed repositories
func NewRepositories(pool *pgxpool.Pool, statsDB *sqlx.DB) *Repositories {
	return &Repositories{
		AccountRepo:  NewAccountRepository(pool),
		ClientRepo:   NewClientRepository(pool),
		ProjectRepo:  NewProjectRepository(pool),
		TimelineRepo: NewTimelineRepository(pool),
		MessageRepo:  NewMessageRepository(pool),
		DocumentRepo: NewDocumentRepository(pool),
		ServiceRepo:  NewServiceRepository(pool),
		InquiryRepo:  NewInquiryRepository(pool),
		TeamRepo:     NewTeamRepository(pool),
		PaymentRepo:  NewPaymentRepository(pool),
		SettingsRepo: NewSettingsRepository(pool),
		StatsRepo:    NewStatsRepository(statsDB),
	}
}
