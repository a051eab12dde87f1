package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"time"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/internal/domains/report/model"
	"atithi/internal/domains/report/model/dto"
	"atithi/internal/domains/report/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReport = "report:summary"

	reportCacheTTL = 60
)

type Report interface {
	Summary(ctx context.Context, from, to time.Time) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context, from, to time.Time) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReport, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for report summary")

		return res, nil
	}

	kpis, err := s.collectKpis(ctx, from, to)
	if err != nil {
		return res, err
	}

	trend, err := s.repo.RevenueTrend(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue trend")

		return res, fmt.Errorf("failed to get revenue trend: %w", err)
	}

	byRoom, err := s.repo.RevenueByRoom(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue by room")

		return res, fmt.Errorf("failed to get revenue by room: %w", err)
	}

	buckets, err := s.repo.PaymentBuckets(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment buckets")

		return res, fmt.Errorf("failed to get payment buckets: %w", err)
	}

	res.FromModels(kpis, trend, byRoom, buckets)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, reportCacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save report summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) collectKpis(ctx context.Context, from, to time.Time) (kpis model.Kpis, err error) {
	totalRevenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get total revenue")

		return kpis, fmt.Errorf("failed to get total revenue: %w", err)
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	revenueToday, err := s.repo.RevenueInRange(ctx, today, today.AddDate(0, 0, 1).Add(-time.Nanosecond))
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue today")

		return kpis, fmt.Errorf("failed to get revenue today: %w", err)
	}

	totalBookings, err := s.repo.BookingCount(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return kpis, fmt.Errorf("failed to count bookings: %w", err)
	}

	occupancy, err := s.repo.Occupancy(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy")

		return kpis, fmt.Errorf("failed to get occupancy: %w", err)
	}

	kpis.TotalRevenue = totalRevenue
	kpis.RevenueToday = revenueToday
	kpis.TotalBookings = totalBookings

	if occupancy.TotalRooms > 0 {
		kpis.Occupancy = int(math.Round(float64(occupancy.OccupiedRooms) / float64(occupancy.TotalRooms) * 100))
		kpis.RevPAR = int(math.Round(totalRevenue / float64(occupancy.TotalRooms)))
	}

	if totalBookings > 0 {
		kpis.ADR = int(math.Round(totalRevenue / float64(totalBookings)))
	}

	return kpis, nil
}
