package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamMember struct {
	ID         string
	Name       string
	Role       string
	Department string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TeamRepository interface {
	Create(ctx context.Context, member *TeamMember) error
	FindByID(ctx context.Context, id string) (*TeamMember, error)
	FindAll(ctx context.Context) ([]*TeamMember, error)
	Update(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id string) error
}

type pgTeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &pgTeamRepository{pool: pool}
}

func (r *pgTeamRepository) Create(ctx context.Context, member *TeamMember) error {
	query := `
		INSERT INTO team_members (name, role, department, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		member.Name, member.Role, member.Department, member.Email,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *pgTeamRepository) FindByID(ctx context.Context, id string) (*TeamMember, error) {
	query := `
		SELECT id, name, role, department, email, created_at, updated_at
		FROM team_members WHERE id = $1
	`
	m := &TeamMember{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Role, &m.Department, &m.Email, &m.CreatedAt, &m.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *pgTeamRepository) FindAll(ctx context.Context) ([]*TeamMember, error) {
	query := `
		SELECT id, name, role, department, email, created_at, updated_at
		FROM team_members
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*TeamMember
	for rows.Next() {
		m := &TeamMember{}
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Role, &m.Department, &m.Email, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *pgTeamRepository) Update(ctx context.Context, member *TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, role = $3, department = $4, email = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		member.ID, member.Name, member.Role, member.Department, member.Email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pgTeamRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return err
}
