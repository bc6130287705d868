package service

import (
	"context"
	"fmt"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/shopspring/decimal"
)

type RecordPaymentInput struct {
	ClientID    *string
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Description *string
}

type PaymentService interface {
	// Record stores a completed payment. There is no gateway integration;
	// amounts arrive already settled.
	Record(ctx context.Context, input RecordPaymentInput) (*repository.Payment, error)
	List(ctx context.Context) ([]*repository.Payment, error)
	ListForClient(ctx context.Context, clientID string) ([]*repository.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	clientRepo  repository.ClientRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, clientRepo repository.ClientRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, clientRepo: clientRepo}
}

func (s *paymentService) Record(ctx context.Context, input RecordPaymentInput) (*repository.Payment, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.FindByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, ErrNotFound
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	payment := &repository.Payment{
		ClientID:    input.ClientID,
		Reference:   input.Reference,
		Amount:      input.Amount,
		Currency:    currency,
		Description: input.Description,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context) ([]*repository.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

func (s *paymentService) ListForClient(ctx context.Context, clientID string) ([]*repository.Payment, error) {
	return s.paymentRepo.FindByClientID(ctx, clientID)
}
