package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Payment is a recorded payment. There is no gateway behind this; the public
// payment flow records a completed payment directly.
type Payment struct {
	ID          string
	ClientID    *string
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Description *string
	Status      string
	CreatedAt   time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindAll(ctx context.Context) ([]*Payment, error)
	FindByClientID(ctx context.Context, clientID string) ([]*Payment, error)
	SumAmounts(ctx context.Context) (decimal.Decimal, error)
}

type pgPaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &pgPaymentRepository{pool: pool}
}

func (r *pgPaymentRepository) Create(ctx context.Context, payment *Payment) error {
	query := `
		INSERT INTO payments (client_id, reference, amount, currency, description, status)
		VALUES ($1, $2, $3, $4, $5, 'completed')
		RETURNING id, status, created_at
	`
	return r.pool.QueryRow(ctx, query,
		payment.ClientID, payment.Reference, payment.Amount.String(),
		payment.Currency, payment.Description,
	).Scan(&payment.ID, &payment.Status, &payment.CreatedAt)
}

func (r *pgPaymentRepository) FindAll(ctx context.Context) ([]*Payment, error) {
	query := `
		SELECT id, client_id, reference, amount::text, currency, description, status, created_at
		FROM payments
		ORDER BY created_at DESC
	`
	return r.queryPayments(ctx, query)
}

func (r *pgPaymentRepository) FindByClientID(ctx context.Context, clientID string) ([]*Payment, error) {
	query := `
		SELECT id, client_id, reference, amount::text, currency, description, status, created_at
		FROM payments
		WHERE client_id = $1
		ORDER BY created_at DESC
	`
	return r.queryPayments(ctx, query, clientID)
}

func (r *pgPaymentRepository) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	var total string
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::text FROM payments`).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(total)
}

func (r *pgPaymentRepository) queryPayments(ctx context.Context, query string, args ...interface{}) ([]*Payment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		var amount string
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.Reference, &amount, &p.Currency,
			&p.Description, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
