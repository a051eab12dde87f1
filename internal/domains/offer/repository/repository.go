package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/offer/model"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/logger"
	gRepo "atithi/shared/repository"

	"github.com/jmoiron/sqlx"
)

// findWinningQuery picks the single offer in effect for a room and date
// range: active, priced, and either open-ended on a null bound or fully
// containing the requested range. Ties break on recency.
const findWinningQuery = `
SELECT id, room_id, title, discount_percent, offer_price, start_date, end_date, is_active, created_at, updated_at
FROM room_offers
WHERE room_id = :room_id
  AND is_active = TRUE
  AND offer_price IS NOT NULL
  AND (
    start_date IS NULL
    OR end_date IS NULL
    OR (start_date <= :check_in AND end_date >= :check_out)
  )
ORDER BY created_at DESC
LIMIT 1`

type Offer interface {
	Insert(ctx context.Context, model model.Offer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Offer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Offer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindWinning(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*model.Offer, error)
	FindWinningTx(ctx context.Context, tx *sqlx.Tx, roomID int64, checkIn, checkOut time.Time) (*model.Offer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Offer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Offer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Offer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) FindWinning(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*model.Offer, error) {
	return repo.findWinning(ctx, repo.db.Read, roomID, checkIn, checkOut)
}

func (repo *repositoryImpl) FindWinningTx(ctx context.Context, tx *sqlx.Tx, roomID int64, checkIn, checkOut time.Time) (*model.Offer, error) {
	return repo.findWinning(ctx, tx, roomID, checkIn, checkOut)
}

type queryer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

func (repo *repositoryImpl) findWinning(ctx context.Context, query queryer, roomID int64, checkIn, checkOut time.Time) (offer *model.Offer, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".offer.findWinning")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, findWinningQuery)

	args := map[string]any{
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	prepare, err := query.PrepareNamedContext(ctx, findWinningQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare winning offer query: %w", err)
	}
	defer prepare.Close()

	var winner model.Offer

	err = prepare.GetContext(ctx, &winner, args)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find winning offer: %w", err)
	}

	return &winner, nil
}
