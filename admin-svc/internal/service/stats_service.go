package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"smarthotel/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultStatsTTL = 24 * time.Hour

	dashboardKey  = "stats:dashboard"
	salesKey      = "stats:sales"
	categoriesKey = "stats:categories"
)

// StatsService reads dashboard figures from the backend and keeps the last
// good answer in Redis. When the backend fails the cached copy is served
// and reported as stale.
type StatsService struct {
	gateway StatsGateway
	rdb     *redis.Client
	ttl     time.Duration
}

func NewStatsService(gw StatsGateway, rdb *redis.Client, ttl time.Duration) *StatsService {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &StatsService{gateway: gw, rdb: rdb, ttl: ttl}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, bool, error) {
	return lastGood(ctx, s, dashboardKey, s.gateway.DashboardStats)
}

func (s *StatsService) Sales(ctx context.Context) (*domain.SalesStats, bool, error) {
	return lastGood(ctx, s, salesKey, s.gateway.SalesStats)
}

func (s *StatsService) Categories(ctx context.Context) (*domain.CategoryRevenue, bool, error) {
	return lastGood(ctx, s, categoriesKey, s.gateway.CategoryRevenue)
}

func lastGood[T any](ctx context.Context, s *StatsService, key string, fetch func(context.Context) (*T, error)) (*T, bool, error) {
	fresh, err := fetch(ctx)
	if err == nil {
		s.store(ctx, key, fresh)
		return fresh, false, nil
	}

	raw, cacheErr := s.rdb.Get(ctx, key).Bytes()
	if cacheErr != nil {
		if !errors.Is(cacheErr, redis.Nil) {
			log.Printf("ERROR: reading %s from cache: %v", key, cacheErr)
		}
		return nil, false, err
	}
	var cached T
	if jsonErr := json.Unmarshal(raw, &cached); jsonErr != nil {
		log.Printf("ERROR: decoding cached %s: %v", key, jsonErr)
		return nil, false, err
	}
	log.Printf("[STATS] backend failed, serving cached %s: %v", key, err)
	return &cached, true, nil
}

func (s *StatsService) store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("ERROR: encoding %s for cache: %v", key, err)
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		log.Printf("ERROR: caching %s: %v", key, err)
	}
}
