package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/auth/model"
	gDto "atithi/shared/dto"
	gRepo "atithi/shared/repository"
)

type Admin interface {
	Insert(ctx context.Context, model model.Admin) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Admin, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Admin]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Admin](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
