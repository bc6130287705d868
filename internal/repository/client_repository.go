package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientNote struct {
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type ClientActivity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type Client struct {
	ID          string
	Name        string
	Email       string
	CompanyName *string
	Phone       *string
	Notes       []ClientNote
	Activities  []ClientActivity
	// ProjectCount is populated by FindAll through a grouped join,
	// not stored on the row.
	ProjectCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, id string) (*Client, error)
	FindAll(ctx context.Context) ([]*Client, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
	AppendNote(ctx context.Context, clientID string, note ClientNote) error
	AppendActivity(ctx context.Context, clientID string, activity ClientActivity) error
}

type pgClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &pgClientRepository{pool: pool}
}

func (r *pgClientRepository) Create(ctx context.Context, client *Client) error {
	notes, err := json.Marshal(notesOrEmpty(client.Notes))
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	activities, err := json.Marshal(activitiesOrEmpty(client.Activities))
	if err != nil {
		return fmt.Errorf("failed to encode activities: %w", err)
	}

	query := `
		INSERT INTO clients (name, email, company_name, phone, notes, activities)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		client.Name, client.Email, client.CompanyName, client.Phone, notes, activities,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

func (r *pgClientRepository) FindByID(ctx context.Context, id string) (*Client, error) {
	query := `
		SELECT id, name, email, company_name, phone, notes, activities, created_at, updated_at
		FROM clients WHERE id = $1
	`
	c := &Client{}
	var notes, activities []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.CompanyName, &c.Phone,
		&notes, &activities, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(notes, &c.Notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	if err := json.Unmarshal(activities, &c.Activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return c, nil
}

// FindAll returns every client newest-first, each carrying its project count.
// A single grouped join replaces the one-query-per-client pattern.
func (r *pgClientRepository) FindAll(ctx context.Context) ([]*Client, error) {
	query := `
		SELECT c.id, c.name, c.email, c.company_name, c.phone, c.notes, c.activities,
		       c.created_at, c.updated_at, COUNT(p.id) AS project_count
		FROM clients c
		LEFT JOIN projects p ON p.client_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*Client
	for rows.Next() {
		c := &Client{}
		var notes, activities []byte
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.CompanyName, &c.Phone,
			&notes, &activities, &c.CreatedAt, &c.UpdatedAt, &c.ProjectCount,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(notes, &c.Notes); err != nil {
			return nil, fmt.Errorf("failed to decode notes: %w", err)
		}
		if err := json.Unmarshal(activities, &c.Activities); err != nil {
			return nil, fmt.Errorf("failed to decode activities: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *pgClientRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM clients`)
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

func (r *pgClientRepository) Update(ctx context.Context, client *Client) error {
	query := `
		UPDATE clients
		SET name = $2, email = $3, company_name = $4, phone = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		client.ID, client.Name, client.Email, client.CompanyName, client.Phone,
	)
	return err
}

// Delete is a hard delete. Projects referencing the client keep their
// client_id and become orphans; reassignment is the operator's problem.
func (r *pgClientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}

func (r *pgClientRepository) AppendNote(ctx context.Context, clientID string, note ClientNote) error {
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to encode note: %w", err)
	}
	query := `
		UPDATE clients
		SET notes = notes || $2::jsonb, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, clientID, data)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pgClientRepository) AppendActivity(ctx context.Context, clientID string, activity ClientActivity) error {
	data, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to encode activity: %w", err)
	}
	query := `
		UPDATE clients
		SET activities = activities || $2::jsonb, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, clientID, data)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func notesOrEmpty(notes []ClientNote) []ClientNote {
	if notes == nil {
		return []ClientNote{}
	}
	return notes
}

func activitiesOrEmpty(activities []ClientActivity) []ClientActivity {
	if activities == nil {
		return []ClientActivity{}
	}
	return activities
}
