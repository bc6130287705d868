package service

import (
	"context"
	"testing"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetReturnsNilWhenUnset(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{}, nil)

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestSettingsUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{}, nil)

	want := &repository.SiteSettings{
		General: repository.GeneralSettings{
			SiteName:     "Arjun & Preetham",
			ContactEmail: "hello@studio.test",
		},
		Notifications: repository.NotificationSettings{
			EmailNotifications: true,
			NewInquiries:       true,
		},
	}
	require.NoError(t, svc.Update(ctx, want))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Arjun & Preetham", got.General.SiteName)
	assert.True(t, got.Notifications.NewInquiries)
}

func TestHeroFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{}, nil)

	hero, err := svc.GetHero(ctx)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, DefaultHero.Title, hero.Title)
	assert.Equal(t, DefaultHero.PrimaryButtonLink, hero.PrimaryButtonLink)

	// The fallback is a copy; mutating it must not poison the default
	hero.Title = "mutated"
	again, err := svc.GetHero(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultHero.Title, again.Title)
}

func TestHeroUpdateReplacesDefault(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(&fakeSettingsRepo{}, nil)

	require.NoError(t, svc.UpdateHero(ctx, &repository.HeroContent{
		Title:             "We Ship Storefronts",
		Subtitle:          "Design and engineering under one roof.",
		PrimaryButtonText: "Talk to Us",
		PrimaryButtonLink: "/contact",
	}))

	hero, err := svc.GetHero(ctx)
	require.NoError(t, err)
	assert.Equal(t, "We Ship Storefronts", hero.Title)
}
