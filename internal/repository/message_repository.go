package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectMessage struct {
	ID         string
	ProjectID  string
	Sender     string
	SenderName string
	Content    string
	Timestamp  time.Time
}

type MessageRepository interface {
	// Append stores a message and bumps the project's last_activity in the
	// same transaction.
	Append(ctx context.Context, message *ProjectMessage) error
	FindByProject(ctx context.Context, projectID string) ([]*ProjectMessage, error)
}

type pgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &pgMessageRepository{pool: pool}
}

func (r *pgMessageRepository) Append(ctx context.Context, message *ProjectMessage) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO project_messages (project_id, sender, sender_name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp
	`, message.ProjectID, message.Sender, message.SenderName, message.Content).
		Scan(&message.ID, &message.Timestamp)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`UPDATE projects SET last_activity = NOW() WHERE id = $1`, message.ProjectID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *pgMessageRepository) FindByProject(ctx context.Context, projectID string) ([]*ProjectMessage, error) {
	query := `
		SELECT id, project_id, sender, sender_name, content, timestamp
		FROM project_messages
		WHERE project_id = $1
		ORDER BY timestamp ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*ProjectMessage
	for rows.Next() {
		m := &ProjectMessage{}
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Sender, &m.SenderName, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
