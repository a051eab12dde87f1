package service

import (
	"context"
	"fmt"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/internal/domains/offer/model"
	"atithi/internal/domains/offer/model/dto"
	"atithi/internal/domains/offer/repository"
	roomModel "atithi/internal/domains/room/model"
	roomRepo "atithi/internal/domains/room/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/idgen"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetOffer    = "offer:get"
	cacheGetAllOffer = "offer:gets"
	cacheCountOffer  = "offer:count"
)

type Offer interface {
	Create(ctx context.Context, req dto.CreateOfferRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOffersResponse, error)
	Get(ctx context.Context, id int64) (dto.OfferResponse, error)
	Update(ctx context.Context, req dto.UpdateOfferRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Offer
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	idgen    idgen.Generator
	otel     otel.Otel
}

func New(repo repository.Offer, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, idgen idgen.Generator, otel otel.Otel) Offer {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		idgen:    idgen,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOfferRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	offer, err := req.ToModel(s.idgen.NextID())
	if err != nil {
		return err
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(offer.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, offer); err != nil {
		log.Error().Err(err).Msg("failed to create offer")

		return fmt.Errorf("failed to create offer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOffer)
		shared.InvalidateCaches(c, s.cache, cacheCountOffer)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOffer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for offers")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count offers")

		return res, fmt.Errorf("failed to count offers: %w", err)
	}

	offers, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offers")

		return res, fmt.Errorf("failed to get offers: %w", err)
	}

	res.FromModels(offers, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save offers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOffer, shared.FormatID(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for offer")

		return res, nil
	}

	offer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get offer")

		return res, fmt.Errorf("failed to get offer: %w", err)
	}

	if offer.ID == 0 {
		return res, failure.NotFound("offer not found") //nolint:wrapcheck
	}

	res.FromModel(offer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save offer to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOfferRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if offer exists")

		return fmt.Errorf("failed to check if offer exists: %w", err)
	}

	if !exist {
		return failure.NotFound("offer not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update offer")

		return fmt.Errorf("failed to update offer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOffer, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete offer from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOffer)
		shared.InvalidateCaches(c, s.cache, cacheCountOffer)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if offer exists")

		return fmt.Errorf("failed to check if offer exists: %w", err)
	}

	if !exist {
		return failure.NotFound("offer not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete offer")

		return fmt.Errorf("failed to delete offer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOffer, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete offer from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOffer)
		shared.InvalidateCaches(c, s.cache, cacheCountOffer)
	}()

	return nil
}
