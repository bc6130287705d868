package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Inquiry struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    string
	Response  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	FindByID(ctx context.Context, id string) (*Inquiry, error)
	FindAll(ctx context.Context) ([]*Inquiry, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	// UpdateStatus moves an inquiry between pending and responded. The
	// response text is stored when given and cleared when nil; the
	// transition is freely reversible.
	UpdateStatus(ctx context.Context, id, status string, response *string) error
	Delete(ctx context.Context, id string) error
}

type pgInquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) InquiryRepository {
	return &pgInquiryRepository{pool: pool}
}

func (r *pgInquiryRepository) Create(ctx context.Context, inquiry *Inquiry) error {
	query := `
		INSERT INTO inquiries (name, email, subject, message, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING id, status, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message,
	).Scan(&inquiry.ID, &inquiry.Status, &inquiry.CreatedAt, &inquiry.UpdatedAt)
}

func (r *pgInquiryRepository) FindByID(ctx context.Context, id string) (*Inquiry, error) {
	query := `
		SELECT id, name, email, subject, message, status, response, created_at, updated_at
		FROM inquiries WHERE id = $1
	`
	i := &Inquiry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Email, &i.Subject, &i.Message,
		&i.Status, &i.Response, &i.CreatedAt, &i.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *pgInquiryRepository) FindAll(ctx context.Context) ([]*Inquiry, error) {
	query := `
		SELECT id, name, email, subject, message, status, response, created_at, updated_at
		FROM inquiries
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*Inquiry
	for rows.Next() {
		i := &Inquiry{}
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Email, &i.Subject, &i.Message,
			&i.Status, &i.Response, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, rows.Err()
}

func (r *pgInquiryRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inquiries WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *pgInquiryRepository) UpdateStatus(ctx context.Context, id, status string, response *string) error {
	query := `
		UPDATE inquiries
		SET status = $2, response = $3, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, status, response)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pgInquiryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	return err
}
