package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectDocument struct {
	ID         string
	ProjectID  string
	Name       string
	URL        string
	Size       *int64
	UploadedAt time.Time
}

type DocumentRepository interface {
	Add(ctx context.Context, doc *ProjectDocument) error
	FindByProject(ctx context.Context, projectID string) ([]*ProjectDocument, error)
	Delete(ctx context.Context, id string) error
}

type pgDocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &pgDocumentRepository{pool: pool}
}

func (r *pgDocumentRepository) Add(ctx context.Context, doc *ProjectDocument) error {
	query := `
		INSERT INTO project_documents (project_id, name, url, size)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at
	`
	return r.pool.QueryRow(ctx, query, doc.ProjectID, doc.Name, doc.URL, doc.Size).
		Scan(&doc.ID, &doc.UploadedAt)
}

func (r *pgDocumentRepository) FindByProject(ctx context.Context, projectID string) ([]*ProjectDocument, error) {
	query := `
		SELECT id, project_id, name, url, size, uploaded_at
		FROM project_documents
		WHERE project_id = $1
		ORDER BY uploaded_at DESC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*ProjectDocument
	for rows.Next() {
		d := &ProjectDocument{}
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.Name, &d.URL, &d.Size, &d.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *pgDocumentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM project_documents WHERE id = $1`, id)
	return err
}
