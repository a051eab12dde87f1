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
	"atithi/internal/domains/booking/model"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/logger"
	gRepo "atithi/shared/repository"

	"github.com/jmoiron/sqlx"
)

// detailSelect joins a booking with its guest, room, and most recent payment
// row.
const detailSelect = `
SELECT bookings.id, bookings.room_id, bookings.user_id, bookings.check_in, bookings.check_out,
       bookings.status, bookings.adults, bookings.children, bookings.created_at, bookings.updated_at,
       users.name AS user_name, users.email AS user_email, users.whatsapp_number,
       rooms.room_name, rooms.room_number, rooms.room_type,
       latest_payment.method AS payment_method, latest_payment.status AS payment_status,
       latest_payment.bill_amount, latest_payment.bill_paid_amount
FROM bookings
JOIN users ON users.id = bookings.user_id
JOIN rooms ON rooms.id = bookings.room_id
LEFT JOIN LATERAL (
    SELECT method, status, bill_amount, bill_paid_amount
    FROM payments
    WHERE payments.booking_id = bookings.id
    ORDER BY payments.created_at DESC
    LIMIT 1
) latest_payment ON TRUE`

const (
	detailByIDQuery = detailSelect + `
WHERE bookings.id = :id`

	upcomingQuery = detailSelect + `
WHERE bookings.check_in >= :today
  AND bookings.status != :cancelled
ORDER BY bookings.check_in ASC`

	todayCheckInsQuery = detailSelect + `
WHERE bookings.check_in >= :today
  AND bookings.check_in < :tomorrow
  AND bookings.status != :cancelled
ORDER BY bookings.check_in ASC`

	// Overstays (check-out date already past but still not checked out)
	// are listed alongside today's departures.
	todayCheckOutsQuery = detailSelect + `
WHERE ((bookings.check_out >= :today AND bookings.check_out < :tomorrow)
       OR (bookings.check_out < :today AND bookings.status != :checked_out))
  AND bookings.status != :cancelled
ORDER BY bookings.check_out ASC`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, id int64) (*model.BookingDetail, error)
	GetUpcoming(ctx context.Context, today time.Time) ([]model.BookingDetail, error)
	GetTodayCheckIns(ctx context.Context, today time.Time) ([]model.BookingDetail, error)
	GetTodayCheckOuts(ctx context.Context, today time.Time) ([]model.BookingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches non-cancelled bookings whose [check_in, check_out)
// interval intersects the requested range under half-open semantics. A
// booking ending on day D does not conflict with one starting on day D.
// excludeID, when nonzero, removes the booking being moved so it cannot
// block itself.
func OverlapFilter(roomID int64, checkIn, checkOut time.Time, excludeID int64) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorNotEq,
			Value:    model.StatusCancelled,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "range_end",
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorLess,
			Value:    checkOut,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "range_start",
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorGreater,
			Value:    checkIn,
			Table:    model.TableName,
		},
	}

	if excludeID != 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

type queryer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, id int64) (detail *model.BookingDetail, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, detailByIDQuery)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, detailByIDQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare booking detail query: %w", err)
	}
	defer prepare.Close()

	var row model.BookingDetail

	err = prepare.GetContext(ctx, &row, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get booking detail: %w", err)
	}

	return &row, nil
}

func (repo *repositoryImpl) GetUpcoming(ctx context.Context, today time.Time) ([]model.BookingDetail, error) {
	return repo.selectDetails(ctx, "GetUpcoming", upcomingQuery, map[string]any{
		"today":     today,
		"cancelled": model.StatusCancelled,
	})
}

func (repo *repositoryImpl) GetTodayCheckIns(ctx context.Context, today time.Time) ([]model.BookingDetail, error) {
	return repo.selectDetails(ctx, "GetTodayCheckIns", todayCheckInsQuery, map[string]any{
		"today":     today,
		"tomorrow":  today.AddDate(0, 0, 1),
		"cancelled": model.StatusCancelled,
	})
}

func (repo *repositoryImpl) GetTodayCheckOuts(ctx context.Context, today time.Time) ([]model.BookingDetail, error) {
	return repo.selectDetails(ctx, "GetTodayCheckOuts", todayCheckOutsQuery, map[string]any{
		"today":       today,
		"tomorrow":    today.AddDate(0, 0, 1),
		"checked_out": model.StatusCheckedOut,
		"cancelled":   model.StatusCancelled,
	})
}

func (repo *repositoryImpl) selectDetails(ctx context.Context, name, query string, args map[string]any) (details []model.BookingDetail, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking."+name)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare booking detail list query: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &details, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list booking details: %w", err)
	}

	return details, nil
}
