package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

type GeneralSettings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	ContactEmail    string      `json:"contactEmail"`
	ContactPhone    string      `json:"contactPhone"`
	Social          SocialLinks `json:"social"`
}

type AppearanceSettings struct {
	DarkMode       bool   `json:"darkMode"`
	Animations     bool   `json:"animations"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	NewInquiries       bool `json:"newInquiries"`
	ProjectUpdates     bool `json:"projectUpdates"`
	ClientMessages     bool `json:"clientMessages"`
}

// SiteSettings is the singleton settings document (row key "site").
type SiteSettings struct {
	General       GeneralSettings      `json:"general"`
	Appearance    AppearanceSettings   `json:"appearance"`
	Notifications NotificationSettings `json:"notifications"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// HeroContent is the homepage hero block (content key "hero").
type HeroContent struct {
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	PrimaryButtonText   string `json:"primaryButtonText"`
	PrimaryButtonLink   string `json:"primaryButtonLink"`
	SecondaryButtonText string `json:"secondaryButtonText"`
	SecondaryButtonLink string `json:"secondaryButtonLink"`
}

type SettingsRepository interface {
	Get(ctx context.Context) (*SiteSettings, error)
	// Put upserts the whole settings document; partial merges are the
	// caller's responsibility.
	Put(ctx context.Context, settings *SiteSettings) error

	GetHero(ctx context.Context) (*HeroContent, error)
	PutHero(ctx context.Context, hero *HeroContent) error
}

type pgSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &pgSettingsRepository{pool: pool}
}

func (r *pgSettingsRepository) Get(ctx context.Context) (*SiteSettings, error) {
	query := `SELECT general, appearance, notifications, updated_at FROM settings WHERE key = 'site'`
	var general, appearance, notifications []byte
	s := &SiteSettings{}
	err := r.pool.QueryRow(ctx, query).Scan(&general, &appearance, &notifications, &s.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(general, &s.General); err != nil {
		return nil, fmt.Errorf("failed to decode general settings: %w", err)
	}
	if err := json.Unmarshal(appearance, &s.Appearance); err != nil {
		return nil, fmt.Errorf("failed to decode appearance settings: %w", err)
	}
	if err := json.Unmarshal(notifications, &s.Notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notification settings: %w", err)
	}
	return s, nil
}

func (r *pgSettingsRepository) Put(ctx context.Context, settings *SiteSettings) error {
	general, err := json.Marshal(settings.General)
	if err != nil {
		return fmt.Errorf("failed to encode general settings: %w", err)
	}
	appearance, err := json.Marshal(settings.Appearance)
	if err != nil {
		return fmt.Errorf("failed to encode appearance settings: %w", err)
	}
	notifications, err := json.Marshal(settings.Notifications)
	if err != nil {
		return fmt.Errorf("failed to encode notification settings: %w", err)
	}

	query := `
		INSERT INTO settings (key, general, appearance, notifications, updated_at)
		VALUES ('site', $1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET general = $1, appearance = $2, notifications = $3, updated_at = NOW()
	`
	_, err = r.pool.Exec(ctx, query, general, appearance, notifications)
	return err
}

func (r *pgSettingsRepository) GetHero(ctx context.Context) (*HeroContent, error) {
	var body []byte
	err := r.pool.QueryRow(ctx, `SELECT body FROM content WHERE key = 'hero'`).Scan(&body)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	hero := &HeroContent{}
	if err := json.Unmarshal(body, hero); err != nil {
		return nil, fmt.Errorf("failed to decode hero content: %w", err)
	}
	return hero, nil
}

func (r *pgSettingsRepository) PutHero(ctx context.Context, hero *HeroContent) error {
	body, err := json.Marshal(hero)
	if err != nil {
		return fmt.Errorf("failed to encode hero content: %w", err)
	}
	query := `
		INSERT INTO content (key, body, updated_at)
		VALUES ('hero', $1, NOW())
		ON CONFLICT (key) DO UPDATE SET body = $1, updated_at = NOW()
	`
	_, err = r.pool.Exec(ctx, query, body)
	return err
}
