package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atithi/infras/otel"
	"atithi/internal/domains/review/model/dto"
	"atithi/internal/domains/review/repository"
	"atithi/shared/constant"

	"github.com/rs/zerolog/log"
)

type Review interface {
	GetAll(ctx context.Context) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, otel otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Reads stay uncached so a review posted on the guest site shows up in the
// admin panel immediately.

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	reviews, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews)

	return res, nil
}
