package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/internal/domains/dashboard/model/dto"
	"atithi/internal/domains/dashboard/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSummary = "dashboard:summary"

	// Live counters go stale fast, so the summary keeps its own short TTL
	// instead of the shared cache TTL.
	summaryCacheTTL = 30

	perMinuteWindow = time.Hour
)

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dashboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSummary)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard summary")

		return res, nil
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := s.repo.Summary(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard summary")

		return res, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	statuses, err := s.repo.StatusBreakdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get status breakdown")

		return res, fmt.Errorf("failed to get status breakdown: %w", err)
	}

	minutes, err := s.repo.BookingsPerMinute(ctx, now.Add(-perMinuteWindow))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings per minute")

		return res, fmt.Errorf("failed to get bookings per minute: %w", err)
	}

	res.FromModels(summary, statuses, minutes)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, summaryCacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard summary to cache")
		}
	}()

	return res, nil
}
