package service

import (
	"context"
	"fmt"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/internal/domains/payment/model"
	"atithi/internal/domains/payment/model/dto"
	"atithi/internal/domains/payment/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPayment    = "payment:get"
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"
)

type Payment interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id int64) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, id int64) error
}

type serviceImpl struct {
	repo  repository.Payment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Payment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	payments, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(payments, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayment, shared.FormatID(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment")

		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == 0 {
		return res, failure.NotFound("payment not found") //nolint:wrapcheck
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePaymentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	payment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == 0 {
		return failure.NotFound("payment not found") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if req.Method != nil {
		updatedFields[model.FieldMethod] = *req.Method
	}

	if req.Status != nil {
		updatedFields[model.FieldStatus] = *req.Status
	}

	if req.BillPaidAmount != nil {
		// The request carries a delta; the cumulative total must never
		// exceed the bill.
		cumulative := payment.BillPaidAmount + *req.BillPaidAmount
		if cumulative > payment.BillAmount {
			return failure.UnprocessableEntity("paid amount would exceed bill amount") //nolint:wrapcheck
		}

		updatedFields[model.FieldBillPaidAmount] = cumulative
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment")

		return fmt.Errorf("failed to update payment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete payment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()

	return nil
}
