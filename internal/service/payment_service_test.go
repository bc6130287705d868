package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRecord(t *testing.T) {
	ctx := context.Background()
	payments := &fakePaymentRepo{}
	clients := newFakeClientRepo()
	svc := NewPaymentService(payments, clients)

	payment, err := svc.Record(ctx, RecordPaymentInput{
		Reference: "INV-1042",
		Amount:    decimal.NewFromFloat(1499.50),
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", payment.Currency)
	assert.Equal(t, "completed", payment.Status)
	assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(1499.50)))
}

func TestPaymentRecordRejectsNonPositiveAmounts(t *testing.T) {
	ctx := context.Background()
	svc := NewPaymentService(&fakePaymentRepo{}, newFakeClientRepo())

	_, err := svc.Record(ctx, RecordPaymentInput{Reference: "INV-1", Amount: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Record(ctx, RecordPaymentInput{Reference: "INV-2", Amount: decimal.NewFromInt(-50)})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPaymentRecordVerifiesClient(t *testing.T) {
	ctx := context.Background()
	payments := &fakePaymentRepo{}
	clients := newFakeClientRepo()
	svc := NewPaymentService(payments, clients)

	ghost := "client-missing"
	_, err := svc.Record(ctx, RecordPaymentInput{
		ClientID:  &ghost,
		Reference: "INV-1",
		Amount:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	client := seedClientProfile(t, clients)
	payment, err := svc.Record(ctx, RecordPaymentInput{
		ClientID:  &client.ID,
		Reference: "INV-2",
		Amount:    decimal.NewFromInt(100),
		Currency:  "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", payment.Currency)
}

func TestPaymentListForClient(t *testing.T) {
	ctx := context.Background()
	payments := &fakePaymentRepo{}
	clients := newFakeClientRepo()
	svc := NewPaymentService(payments, clients)

	client := seedClientProfile(t, clients)
	other := seedClientProfile(t, clients)

	for _, c := range []string{client.ID, client.ID, other.ID} {
		id := c
		_, err := svc.Record(ctx, RecordPaymentInput{
			ClientID:  &id,
			Reference: "INV",
			Amount:    decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	mine, err := svc.ListForClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
