package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TimelineEntry struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Type        string
	Date        time.Time
}

type TimelineRepository interface {
	Append(ctx context.Context, entry *TimelineEntry) error
	FindByProject(ctx context.Context, projectID string) ([]*TimelineEntry, error)
}

type pgTimelineRepository struct {
	pool *pgxpool.Pool
}

func NewTimelineRepository(pool *pgxpool.Pool) TimelineRepository {
	return &pgTimelineRepository{pool: pool}
}

func (r *pgTimelineRepository) Append(ctx context.Context, entry *TimelineEntry) error {
	query := `
		INSERT INTO project_timeline (project_id, title, description, type, date)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		RETURNING id, date
	`
	var date *time.Time
	if !entry.Date.IsZero() {
		date = &entry.Date
	}
	return r.pool.QueryRow(ctx, query,
		entry.ProjectID, entry.Title, entry.Description, entry.Type, date,
	).Scan(&entry.ID, &entry.Date)
}

func (r *pgTimelineRepository) FindByProject(ctx context.Context, projectID string) ([]*TimelineEntry, error) {
	query := `
		SELECT id, project_id, title, description, type, date
		FROM project_timeline
		WHERE project_id = $1
		ORDER BY date DESC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*TimelineEntry
	for rows.Next() {
		e := &TimelineEntry{}
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Title, &e.Description, &e.Type, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
