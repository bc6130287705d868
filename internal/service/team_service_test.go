package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewTeamService(newFakeTeamRepo())

	member, err := svc.Create(ctx, "Arjun", "Lead Developer", "Engineering", "arjun@studio.test")
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)

	got, err := svc.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arjun", got.Name)

	// Update replaces the whole record
	updated, err := svc.Update(ctx, member.ID, "Arjun", "CTO", "Leadership", "arjun@studio.test")
	require.NoError(t, err)
	assert.Equal(t, "CTO", updated.Role)
	assert.Equal(t, "Leadership", updated.Department)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, member.ID))
	_, err = svc.GetByID(ctx, member.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewTeamService(newFakeTeamRepo())

	_, err := svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Update(ctx, "missing", "X", "Y", "Z", "x@y.test")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}
