package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/review/model"
	"atithi/shared/constant"
	"atithi/shared/logger"
)

const reviewsQuery = `
SELECT
    reviews.id,
    reviews.user_id,
    reviews.room_id,
    reviews.rating,
    reviews.comment,
    reviews.created_at,
    users.name AS user_name,
    rooms.room_name AS room_name
FROM reviews
JOIN users ON users.id = reviews.user_id
JOIN rooms ON rooms.id = reviews.room_id
ORDER BY reviews.created_at DESC`

type Review interface {
	GetAll(ctx context.Context) ([]model.Review, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) (reviews []model.Review, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, reviewsQuery)

	err = repo.db.Read.SelectContext(ctx, &reviews, reviewsQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return reviews, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}
