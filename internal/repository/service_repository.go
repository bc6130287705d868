package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProcessStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service is a catalog entry on the public services page.
type Service struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Icon        string
	Features    []string
	Process     []ProcessStep
	Benefits    []string
	FAQ         []FAQItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	FindByID(ctx context.Context, id string) (*Service, error)
	FindBySlug(ctx context.Context, slug string) (*Service, error)
	FindAll(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id string) error
}

type pgServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &pgServiceRepository{pool: pool}
}

const serviceColumns = `
	id, title, slug, description, icon, features, process, benefits, faq,
	created_at, updated_at
`

func (r *pgServiceRepository) Create(ctx context.Context, service *Service) error {
	features, process, benefits, faq, err := encodeServiceFields(service)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO services (title, slug, description, icon, features, process, benefits, faq)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		service.Title, service.Slug, service.Description, service.Icon,
		features, process, benefits, faq,
	).Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
}

func (r *pgServiceRepository) FindByID(ctx context.Context, id string) (*Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	return scanService(r.pool.QueryRow(ctx, query, id))
}

func (r *pgServiceRepository) FindBySlug(ctx context.Context, slug string) (*Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE slug = $1`
	return scanService(r.pool.QueryRow(ctx, query, slug))
}

func (r *pgServiceRepository) FindAll(ctx context.Context) ([]*Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY title ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// Update never touches the slug; it is derived on create only.
func (r *pgServiceRepository) Update(ctx context.Context, service *Service) error {
	features, process, benefits, faq, err := encodeServiceFields(service)
	if err != nil {
		return err
	}

	query := `
		UPDATE services
		SET title = $2, description = $3, icon = $4, features = $5, process = $6,
		    benefits = $7, faq = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		service.ID, service.Title, service.Description, service.Icon,
		features, process, benefits, faq,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pgServiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}

func encodeServiceFields(service *Service) (features, process, benefits, faq []byte, err error) {
	if features, err = json.Marshal(stringsOrEmpty(service.Features)); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode features: %w", err)
	}
	steps := service.Process
	if steps == nil {
		steps = []ProcessStep{}
	}
	if process, err = json.Marshal(steps); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode process: %w", err)
	}
	if benefits, err = json.Marshal(stringsOrEmpty(service.Benefits)); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode benefits: %w", err)
	}
	items := service.FAQ
	if items == nil {
		items = []FAQItem{}
	}
	if faq, err = json.Marshal(items); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode faq: %w", err)
	}
	return features, process, benefits, faq, nil
}

func scanService(row pgx.Row) (*Service, error) {
	s := &Service{}
	var features, process, benefits, faq []byte
	err := row.Scan(
		&s.ID, &s.Title, &s.Slug, &s.Description, &s.Icon,
		&features, &process, &benefits, &faq, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &s.Features); err != nil {
		return nil, fmt.Errorf("failed to decode features: %w", err)
	}
	if err := json.Unmarshal(process, &s.Process); err != nil {
		return nil, fmt.Errorf("failed to decode process: %w", err)
	}
	if err := json.Unmarshal(benefits, &s.Benefits); err != nil {
		return nil, fmt.Errorf("failed to decode benefits: %w", err)
	}
	if err := json.Unmarshal(faq, &s.FAQ); err != nil {
		return nil, fmt.Errorf("failed to decode faq: %w", err)
	}
	return s, nil
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
