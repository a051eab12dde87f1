package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/payment/model"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/logger"
	gRepo "atithi/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Only the most recent payment row for a booking is treated as canonical.
const latestByBookingQuery = `
SELECT id, booking_id, user_id, method, status, currency, bill_amount, bill_paid_amount, created_at, updated_at
FROM payments
WHERE booking_id = :booking_id
ORDER BY created_at DESC
LIMIT 1`

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetLatestByBooking(ctx context.Context, bookingID int64) (*model.Payment, error)
	GetLatestByBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID int64) (*model.Payment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type queryer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

func (repo *repositoryImpl) GetLatestByBooking(ctx context.Context, bookingID int64) (*model.Payment, error) {
	return repo.getLatestByBooking(ctx, repo.db.Read, bookingID)
}

func (repo *repositoryImpl) GetLatestByBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID int64) (*model.Payment, error) {
	return repo.getLatestByBooking(ctx, tx, bookingID)
}

func (repo *repositoryImpl) getLatestByBooking(ctx context.Context, query queryer, bookingID int64) (payment *model.Payment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.getLatestByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, latestByBookingQuery)

	prepare, err := query.PrepareNamedContext(ctx, latestByBookingQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare latest payment query: %w", err)
	}
	defer prepare.Close()

	var latest model.Payment

	err = prepare.GetContext(ctx, &latest, map[string]any{"booking_id": bookingID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get latest payment: %w", err)
	}

	return &latest, nil
}
