package service

import (
	"context"
	"testing"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCreateDerivesSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeServiceRepo())

	created, err := svc.Create(ctx, ServiceInput{
		Title:       "UI/UX Design",
		Description: "Interfaces people enjoy using.",
		Icon:        "palette",
		Features:    []string{"Wireframes", "Prototypes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ui-ux-design", created.Slug)

	found, err := svc.GetBySlug(ctx, "ui-ux-design")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.Create(ctx, ServiceInput{Title: "UI & UX Design"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCatalogUpdateKeepsSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeServiceRepo())

	created, err := svc.Create(ctx, ServiceInput{Title: "Web Development", Icon: "code"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ServiceInput{
		Title: "Full-Stack Development",
		Icon:  "stack",
		Process: []repository.ProcessStep{
			{Title: "Discovery", Description: "We learn your goals."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Full-Stack Development", updated.Title)
	assert.Equal(t, "web-development", updated.Slug)

	// The catalog URL never moved
	found, err := svc.GetBySlug(ctx, "web-development")
	require.NoError(t, err)
	assert.Equal(t, "Full-Stack Development", found.Title)
}

func TestCatalogUpdateReplacesFields(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeServiceRepo())

	created, err := svc.Create(ctx, ServiceInput{
		Title:    "Web Development",
		Features: []string{"Responsive design", "API integrations"},
		Benefits: []string{"Faster time to market"},
	})
	require.NoError(t, err)

	// Update is a full replace of the supplied document
	updated, err := svc.Update(ctx, created.ID, ServiceInput{Title: "Web Development"})
	require.NoError(t, err)
	assert.Empty(t, updated.Features)
	assert.Empty(t, updated.Benefits)
}

func TestCatalogNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeServiceRepo())

	_, err := svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Update(ctx, "missing", ServiceInput{Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo)

	created, err := svc.Create(ctx, ServiceInput{Title: "SEO Audit"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
