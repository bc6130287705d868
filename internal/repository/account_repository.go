package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Account is an auth principal for one of the two portals. Staff accounts may
// carry the admin claim; client accounts are bound to a client profile.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Audience     string
	IsAdmin      bool
	ClientID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RefreshToken struct {
	ID        string
	Token     string
	AccountID string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
	Update(ctx context.Context, account *Account) error

	CreateRefreshToken(ctx context.Context, token *RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteRefreshTokensForAccount(ctx context.Context, accountID string) error
}

type pgAccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &pgAccountRepository{pool: pool}
}

func (r *pgAccountRepository) Create(ctx context.Context, account *Account) error {
	query := `
		INSERT INTO accounts (email, password_hash, name, audience, is_admin, client_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		account.Email, account.PasswordHash, account.Name,
		account.Audience, account.IsAdmin, account.ClientID,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *pgAccountRepository) FindByID(ctx context.Context, id string) (*Account, error) {
	query := `
		SELECT id, email, password_hash, name, audience, is_admin, client_id, created_at, updated_at
		FROM accounts WHERE id = $1
	`
	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

func (r *pgAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT id, email, password_hash, name, audience, is_admin, client_id, created_at, updated_at
		FROM accounts WHERE email = $1
	`
	return r.scanAccount(r.pool.QueryRow(ctx, query, email))
}

func (r *pgAccountRepository) scanAccount(row pgx.Row) (*Account, error) {
	a := &Account{}
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Audience,
		&a.IsAdmin, &a.ClientID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *pgAccountRepository) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	query := `UPDATE accounts SET is_admin = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, isAdmin)
	return err
}

func (r *pgAccountRepository) Update(ctx context.Context, account *Account) error {
	query := `
		UPDATE accounts
		SET email = $2, name = $3, password_hash = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, account.ID, account.Email, account.Name, account.PasswordHash)
	return err
}

func (r *pgAccountRepository) CreateRefreshToken(ctx context.Context, token *RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, account_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query, token.Token, token.AccountID, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt)
}

func (r *pgAccountRepository) FindRefreshToken(ctx context.Context, token string) (*RefreshToken, error) {
	query := `
		SELECT id, token, account_id, expires_at, created_at
		FROM refresh_tokens WHERE token = $1
	`
	rt := &RefreshToken{}
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.Token, &rt.AccountID, &rt.ExpiresAt, &rt.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *pgAccountRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	query := `DELETE FROM refresh_tokens WHERE token = $1`
	_, err := r.pool.Exec(ctx, query, token)
	return err
}

func (r *pgAccountRepository) DeleteRefreshTokensForAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM refresh_tokens WHERE account_id = $1`
	_, err := r.pool.Exec(ctx, query, accountID)
	return err
}
