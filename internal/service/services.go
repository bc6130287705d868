package service

import (
	"errors"

	"github.com/arjun-and-preetham/studio-backend/internal/config"
	"github.com/arjun-and-preetham/studio-backend/internal/db"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidAmount      = errors.New("invalid amount")
)

// Broadcaster fans portal events out to subscribed websocket clients.
// Implemented by socket.Broadcaster; kept as an interface so services can be
// tested without a hub.
type Broadcaster interface {
	BroadcastProjectStatus(projectID string, payload map[string]interface{})
	BroadcastProjectMessage(projectID string, payload map[string]interface{})
	BroadcastTimelineEntry(projectID string, payload map[string]interface{})
}

// InquiryMailer sends inquiry-related mail. Implemented by email.Service.
type InquiryMailer interface {
	SendNewInquiryAlert(to, inquirerName, subject, message string) error
	SendInquiryResponse(to, inquirerName, subject, response string) error
}

// Services Container

type Services struct {
	Auth     AuthService
	Client   ClientService
	Project  ProjectService
	Catalog  CatalogService
	Inquiry  InquiryService
	Team     TeamService
	Settings SettingsService
	Payment  PaymentService
	Stats    StatsService
}

type ServiceDeps struct {
	Config      *config.Config
	Repos       *repository.Repositories
	Cache       *db.RedisDB // optional
	Mailer      InquiryMailer
	Broadcaster Broadcaster
}

func NewServices(deps *ServiceDeps) *Services {
	settings := NewSettingsService(deps.Repos.SettingsRepo, deps.Cache)
	return &Services{
		Auth:     NewAuthService(deps.Config, deps.Repos.AccountRepo, deps.Repos.ClientRepo),
		Client:   NewClientService(deps.Repos.ClientRepo),
		Project:  NewProjectService(deps.Repos.ProjectRepo, deps.Repos.TimelineRepo, deps.Repos.MessageRepo, deps.Repos.DocumentRepo, deps.Repos.ClientRepo, deps.Broadcaster, deps.Cache),
		Catalog:  NewCatalogService(deps.Repos.ServiceRepo),
		Inquiry:  NewInquiryService(deps.Repos.InquiryRepo, settings, deps.Mailer),
		Team:     NewTeamService(deps.Repos.TeamRepo),
		Settings: settings,
		Payment:  NewPaymentService(deps.Repos.PaymentRepo, deps.Repos.ClientRepo),
		Stats:    NewStatsService(deps.Repos.StatsRepo, deps.Cache),
	}
}
