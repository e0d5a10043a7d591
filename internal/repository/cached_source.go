package repository

import (
	"context"
	"fmt"
	"time"

	"RiverSight/internal/domain/models"
	"RiverSight/internal/domain/repository"
	"RiverSight/pkg/cache"
	"RiverSight/pkg/logger"
)

// CachedHistorySource decorates a HistorySource with a cache layer over the
// raw provider responses. Computed series are never cached, only inputs.
type CachedHistorySource struct {
	source          repository.HistorySource
	cache           cache.Service
	historyTTL      time.Duration
	fundamentalsTTL time.Duration
	log             *logger.Logger
}

// NewCachedHistorySource wraps source with the given cache.
func NewCachedHistorySource(source repository.HistorySource, c cache.Service, historyTTL, fundamentalsTTL time.Duration, log *logger.Logger) *CachedHistorySource {
	if historyTTL <= 0 {
		historyTTL = 15 * time.Minute
	}
	if fundamentalsTTL <= 0 {
		fundamentalsTTL = time.Hour
	}
	return &CachedHistorySource{
		source:          source,
		cache:           c,
		historyTTL:      historyTTL,
		fundamentalsTTL: fundamentalsTTL,
		log:             log,
	}
}

func (s *CachedHistorySource) Name() string { return s.source.Name() }

func (s *CachedHistorySource) DailyHistory(ctx context.Context, symbol string, lookback repository.Lookback) ([]models.PricePoint, error) {
	key := fmt.Sprintf("history:%s:%s:%s", s.source.Name(), symbol, lookback)

	var cached []models.PricePoint
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.log.Debug("history cache hit", logger.String("symbol", symbol))
		return cached, nil
	}

	points, err := s.source.DailyHistory(ctx, symbol, lookback)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, points, s.historyTTL); err != nil {
		s.log.Warn("history cache write failed",
			logger.String("symbol", symbol),
			logger.Error(err))
	}
	return points, nil
}

func (s *CachedHistorySource) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	key := fmt.Sprintf("fundamentals:%s:%s", s.source.Name(), symbol)

	var cached models.Fundamentals
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.log.Debug("fundamentals cache hit", logger.String("symbol", symbol))
		return cached, nil
	}

	f, err := s.source.Fundamentals(ctx, symbol)
	if err != nil {
		return models.Fundamentals{}, err
	}
	if err := s.cache.Set(ctx, key, f, s.fundamentalsTTL); err != nil {
		s.log.Warn("fundamentals cache write failed",
			logger.String("symbol", symbol),
			logger.Error(err))
	}
	return f, nil
}
