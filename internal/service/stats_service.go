package service

import (
	"context"
	"log"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/db"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
)

const statsCacheKey = "stats:dashboard"

type StatsService interface {
	Dashboard(ctx context.Context) (*repository.DashboardStats, error)
	// Warmup recomputes the dashboard and refreshes the cache. Run from cron
	// so the first admin request of the day does not pay for the aggregation.
	Warmup(ctx context.Context) error
}

type statsService struct {
	statsRepo repository.StatsRepository
	cache     *db.RedisDB
}

func NewStatsService(statsRepo repository.StatsRepository, cache *db.RedisDB) StatsService {
	return &statsService{statsRepo: statsRepo, cache: cache}
}

func (s *statsService) Dashboard(ctx context.Context) (*repository.DashboardStats, error) {
	if s.cache != nil {
		cached := &repository.DashboardStats{}
		if err := s.cache.GetCache(ctx, statsCacheKey, cached); err == nil {
			return cached, nil
		}
	}
	return s.compute(ctx)
}

func (s *statsService) Warmup(ctx context.Context) error {
	_, err := s.compute(ctx)
	return err
}

func (s *statsService) compute(ctx context.Context) (*repository.DashboardStats, error) {
	stats, err := s.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetCache(ctx, statsCacheKey, stats, 5*time.Minute); err != nil {
			log.Printf("[Stats] Failed to cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}
