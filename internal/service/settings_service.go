package service

import (
	"context"
	"log"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/db"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
)

const (
	settingsCacheKey = "settings:site"
	heroCacheKey     = "content:hero"
)

// DefaultHero is served whenever no hero block has been stored yet.
var DefaultHero = repository.HeroContent{
	Title:               "Building the Future of the Web",
	Subtitle:            "We create immersive, cutting-edge web experiences that blend creativity, technology, and business strategy.",
	PrimaryButtonText:   "Start Your Project",
	PrimaryButtonLink:   "/contact",
	SecondaryButtonText: "View Our Work",
	SecondaryButtonLink: "/portfolio",
}

type SettingsService interface {
	// Get returns the stored settings document, or nil when none exists.
	Get(ctx context.Context) (*repository.SiteSettings, error)
	Update(ctx context.Context, settings *repository.SiteSettings) error
	// GetHero falls back to DefaultHero when nothing is stored.
	GetHero(ctx context.Context) (*repository.HeroContent, error)
	UpdateHero(ctx context.Context, hero *repository.HeroContent) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	cache        *db.RedisDB
}

func NewSettingsService(settingsRepo repository.SettingsRepository, cache *db.RedisDB) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, cache: cache}
}

func (s *settingsService) Get(ctx context.Context) (*repository.SiteSettings, error) {
	if s.cache != nil {
		cached := &repository.SiteSettings{}
		if err := s.cache.GetCache(ctx, settingsCacheKey, cached); err == nil {
			return cached, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings != nil && s.cache != nil {
		if err := s.cache.SetCache(ctx, settingsCacheKey, settings, 10*time.Minute); err != nil {
			log.Printf("[Settings] Failed to cache settings: %v", err)
		}
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings *repository.SiteSettings) error {
	if err := s.settingsRepo.Put(ctx, settings); err != nil {
		return err
	}
	s.invalidate(ctx, settingsCacheKey)
	return nil
}

func (s *settingsService) GetHero(ctx context.Context) (*repository.HeroContent, error) {
	if s.cache != nil {
		cached := &repository.HeroContent{}
		if err := s.cache.GetCache(ctx, heroCacheKey, cached); err == nil {
			return cached, nil
		}
	}

	hero, err := s.settingsRepo.GetHero(ctx)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		fallback := DefaultHero
		return &fallback, nil
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, heroCacheKey, hero, 10*time.Minute); err != nil {
			log.Printf("[Settings] Failed to cache hero content: %v", err)
		}
	}
	return hero, nil
}

func (s *settingsService) UpdateHero(ctx context.Context, hero *repository.HeroContent) error {
	if err := s.settingsRepo.PutHero(ctx, hero); err != nil {
		return err
	}
	s.invalidate(ctx, heroCacheKey)
	return nil
}

func (s *settingsService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(ctx, key); err != nil {
		log.Printf("[Settings] Failed to invalidate %s: %v", key, err)
	}
}
