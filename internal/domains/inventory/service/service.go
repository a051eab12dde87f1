package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/infras/serpapi"
	"atithi/internal/domains/inventory/model/dto"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	"atithi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheSearchInventory = "inventory:search"
	cacheDetailInventory = "inventory:detail"

	// Upstream rates move slowly and every call bills against the API key.
	inventoryCacheTTL = 300
)

type Inventory interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	Details(ctx context.Context, req dto.SearchRequest) (dto.DetailResponse, error)
}

type serviceImpl struct {
	client serpapi.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client serpapi.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Normalize(); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheSearchInventory, req.Query, req.CheckIn, req.CheckOut)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory search")

		return res, nil
	}

	result, err := s.client.SearchHotels(ctx, req.ToParams())
	if err != nil {
		log.Error().Err(err).Str("query", req.Query).Msg("failed to search hotels")

		return res, fmt.Errorf("failed to search hotels: %w", err)
	}

	res.FromResult(result)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, inventoryCacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory search to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Details(ctx context.Context, req dto.SearchRequest) (res dto.DetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Details")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PropertyToken == "" {
		return res, failure.BadRequestFromString("property token is required") //nolint:wrapcheck
	}

	if err = req.Normalize(); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheDetailInventory, req.PropertyToken, req.CheckIn, req.CheckOut)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory details")

		return res, nil
	}

	detail, err := s.client.GetPropertyDetails(ctx, req.ToParams())
	if err != nil {
		log.Error().Err(err).Str("propertyToken", req.PropertyToken).Msg("failed to get property details")

		return res, fmt.Errorf("failed to get property details: %w", err)
	}

	res.FromDetail(detail)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, inventoryCacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory details to cache")
		}
	}()

	return res, nil
}
