package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atithi/infras/otel"
	"atithi/internal/domains/whatsapp/model/dto"
	"atithi/internal/domains/whatsapp/repository"
	"atithi/shared/constant"
	"atithi/shared/failure"

	"github.com/rs/zerolog/log"
)

type Whatsapp interface {
	GetContacts(ctx context.Context) (dto.GetContactsResponse, error)
	GetThread(ctx context.Context, phone string) (dto.GetThreadResponse, error)
}

type serviceImpl struct {
	repo repository.Whatsapp
	otel otel.Otel
}

func New(repo repository.Whatsapp, otel otel.Otel) Whatsapp {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Chat reads stay uncached so the viewer always shows the latest messages.

func (s *serviceImpl) GetContacts(ctx context.Context) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	contacts, err := s.repo.GetContacts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get whatsapp contacts")

		return res, fmt.Errorf("failed to get whatsapp contacts: %w", err)
	}

	res.FromModels(contacts)

	return res, nil
}

func (s *serviceImpl) GetThread(ctx context.Context, phone string) (res dto.GetThreadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetThread")
	defer scope.End()
	defer scope.TraceIfError(err)

	if phone == "" {
		return res, failure.BadRequestFromString("phone is required") //nolint:wrapcheck
	}

	messages, err := s.repo.GetThread(ctx, phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to get whatsapp thread")

		return res, fmt.Errorf("failed to get whatsapp thread: %w", err)
	}

	res.FromModels(messages)

	return res, nil
}
