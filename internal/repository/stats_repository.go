package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// MonthlyPoint is one month of a dashboard chart series.
type MonthlyPoint struct {
	Month time.Time       `db:"month" json:"month"`
	Value decimal.Decimal `db:"value" json:"value"`
}

// DashboardStats aggregates the admin dashboard numbers. All figures come
// from grouped queries over real rows; there is no synthetic chart data.
type DashboardStats struct {
	TotalProjects    int             `db:"total_projects"`
	NewProjects      int             `db:"new_projects"`
	ActiveClients    int             `db:"active_clients"`
	NewClients       int             `db:"new_clients"`
	PendingInquiries int             `db:"pending_inquiries"`
	Revenue          decimal.Decimal `db:"revenue"`
	MonthlyRevenue   []MonthlyPoint
	MonthlyProjects  []MonthlyPoint
}

type StatsRepository interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type sqlxStatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &sqlxStatsRepository{db: db}
}

// Dashboard computes the totals in one scalar query plus one grouped query
// per chart series, replacing full-collection scans per metric.
func (r *sqlxStatsRepository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	totalsQuery := `
		SELECT
			(SELECT COUNT(*) FROM projects)                                                  AS total_projects,
			(SELECT COUNT(*) FROM projects WHERE created_at > NOW() - INTERVAL '30 days')    AS new_projects,
			(SELECT COUNT(DISTINCT client_id) FROM projects WHERE client_id IS NOT NULL)     AS active_clients,
			(SELECT COUNT(*) FROM clients WHERE created_at > NOW() - INTERVAL '30 days')     AS new_clients,
			(SELECT COUNT(*) FROM inquiries WHERE status = 'pending')                        AS pending_inquiries,
			(SELECT COALESCE(SUM(amount), 0) FROM payments)                                  AS revenue
	`
	var totals struct {
		TotalProjects    int    `db:"total_projects"`
		NewProjects      int    `db:"new_projects"`
		ActiveClients    int    `db:"active_clients"`
		NewClients       int    `db:"new_clients"`
		PendingInquiries int    `db:"pending_inquiries"`
		Revenue          string `db:"revenue"`
	}
	if err := r.db.GetContext(ctx, &totals, totalsQuery); err != nil {
		return nil, err
	}
	stats.TotalProjects = totals.TotalProjects
	stats.NewProjects = totals.NewProjects
	stats.ActiveClients = totals.ActiveClients
	stats.NewClients = totals.NewClients
	stats.PendingInquiries = totals.PendingInquiries

	revenue, err := decimal.NewFromString(totals.Revenue)
	if err != nil {
		return nil, err
	}
	stats.Revenue = revenue

	if stats.MonthlyRevenue, err = r.monthlySeries(ctx, `
		SELECT months.month AS month, COALESCE(SUM(p.amount), 0)::text AS value
		FROM generate_series(
			date_trunc('month', NOW()) - INTERVAL '11 months',
			date_trunc('month', NOW()),
			INTERVAL '1 month'
		) AS months(month)
		LEFT JOIN payments p ON date_trunc('month', p.created_at) = months.month
		GROUP BY months.month
		ORDER BY months.month
	`); err != nil {
		return nil, err
	}

	if stats.MonthlyProjects, err = r.monthlySeries(ctx, `
		SELECT months.month AS month, COUNT(p.id)::text AS value
		FROM generate_series(
			date_trunc('month', NOW()) - INTERVAL '11 months',
			date_trunc('month', NOW()),
			INTERVAL '1 month'
		) AS months(month)
		LEFT JOIN projects p ON date_trunc('month', p.created_at) = months.month
		GROUP BY months.month
		ORDER BY months.month
	`); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *sqlxStatsRepository) monthlySeries(ctx context.Context, query string) ([]MonthlyPoint, error) {
	var rows []struct {
		Month time.Time `db:"month"`
		Value string    `db:"value"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	points := make([]MonthlyPoint, len(rows))
	for i, row := range rows {
		value, err := decimal.NewFromString(row.Value)
		if err != nil {
			return nil, err
		}
		points[i] = MonthlyPoint{Month: row.Month, Value: value}
	}
	return points, nil
}
