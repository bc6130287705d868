package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectTeamRef struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Project struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Content     string
	Category    string
	// PublishStatus is the portfolio publication state (draft/published);
	// Status is the delivery lifecycle shown to the client. They are
	// independent axes, not one vocabulary.
	PublishStatus    string
	Status           string
	Progress         int
	CurrentPhase     *string
	PhaseDescription *string
	ClientID         *string
	StartDate        *time.Time
	DueDate          *time.Time
	CompletionDate   *time.Time
	LastActivity     *time.Time
	Team             []ProjectTeamRef
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StatusChange is the payload for UpdateStatus; the timeline entry recording
// the change is written in the same transaction.
type StatusChange struct {
	Status           string
	Progress         int
	CurrentPhase     string
	PhaseDescription string
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id string) (*Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
	FindAll(ctx context.Context) ([]*Project, error)
	FindPublished(ctx context.Context) ([]*Project, error)
	FindByClientID(ctx context.Context, clientID string) ([]*Project, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, project *Project) error
	UpdateStatus(ctx context.Context, projectID string, change StatusChange) error
	TouchLastActivity(ctx context.Context, projectID string) error
	Delete(ctx context.Context, id string) error
}

type pgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &pgProjectRepository{pool: pool}
}

const projectColumns = `
	id, title, slug, description, content, category, publish_status, status,
	progress, current_phase, phase_description, client_id, start_date, due_date,
	completion_date, last_activity, team, created_at, updated_at
`

func (r *pgProjectRepository) Create(ctx context.Context, project *Project) error {
	team, err := json.Marshal(teamOrEmpty(project.Team))
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}

	query := `
		INSERT INTO projects (title, slug, description, content, category, publish_status,
		                      status, progress, current_phase, phase_description, client_id,
		                      start_date, due_date, completion_date, team)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		project.Title, project.Slug, project.Description, project.Content,
		project.Category, project.PublishStatus, project.Status, project.Progress,
		project.CurrentPhase, project.PhaseDescription, project.ClientID,
		project.StartDate, project.DueDate, project.CompletionDate, team,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *pgProjectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.pool.QueryRow(ctx, query, id))
}

func (r *pgProjectRepository) FindBySlug(ctx context.Context, slug string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`
	return scanProject(r.pool.QueryRow(ctx, query, slug))
}

func (r *pgProjectRepository) FindAll(ctx context.Context) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	return r.queryProjects(ctx, query)
}

func (r *pgProjectRepository) FindPublished(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE publish_status = 'published'
		ORDER BY created_at DESC
	`
	return r.queryProjects(ctx, query)
}

func (r *pgProjectRepository) FindByClientID(ctx context.Context, clientID string) ([]*Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE client_id = $1
		ORDER BY created_at DESC
	`
	return r.queryProjects(ctx, query, clientID)
}

func (r *pgProjectRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM projects`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update replaces the supplied fields. The slug is deliberately absent: it is
// derived once on create and never recomputed.
func (r *pgProjectRepository) Update(ctx context.Context, project *Project) error {
	team, err := json.Marshal(teamOrEmpty(project.Team))
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}

	query := `
		UPDATE projects
		SET title = $2, description = $3, content = $4, category = $5,
		    publish_status = $6, status = $7, progress = $8, client_id = $9,
		    start_date = $10, due_date = $11, completion_date = $12, team = $13,
		    updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		project.ID, project.Title, project.Description, project.Content,
		project.Category, project.PublishStatus, project.Status, project.Progress,
		project.ClientID, project.StartDate, project.DueDate, project.CompletionDate, team,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus changes the delivery state and appends the matching timeline
// entry in one transaction, so the portal never sees a status without its
// history row.
func (r *pgProjectRepository) UpdateStatus(ctx context.Context, projectID string, change StatusChange) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE projects
		SET status = $2, progress = $3, current_phase = $4, phase_description = $5,
		    updated_at = NOW()
		WHERE id = $1
	`, projectID, change.Status, change.Progress, change.CurrentPhase, change.PhaseDescription)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO project_timeline (project_id, title, description, type)
		VALUES ($1, $2, $3, 'update')
	`, projectID, fmt.Sprintf("Status updated to %s", change.Status), change.PhaseDescription)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgProjectRepository) TouchLastActivity(ctx context.Context, projectID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE projects SET last_activity = NOW() WHERE id = $1`, projectID)
	return err
}

func (r *pgProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *pgProjectRepository) queryProjects(ctx context.Context, query string, args ...interface{}) ([]*Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*Project, error) {
	p := &Project{}
	var team []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content, &p.Category,
		&p.PublishStatus, &p.Status, &p.Progress, &p.CurrentPhase, &p.PhaseDescription,
		&p.ClientID, &p.StartDate, &p.DueDate, &p.CompletionDate, &p.LastActivity,
		&team, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(team, &p.Team); err != nil {
		return nil, fmt.Errorf("failed to decode team: %w", err)
	}
	return p, nil
}

func teamOrEmpty(team []ProjectTeamRef) []ProjectTeamRef {
	if team == nil {
		return []ProjectTeamRef{}
	}
	return team
}

// IsUniqueViolation reports whether err is a Postgres unique-index violation
// (duplicate slug, duplicate account email).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
