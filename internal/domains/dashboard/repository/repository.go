package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	bookingModel "atithi/internal/domains/booking/model"
	"atithi/internal/domains/dashboard/model"
	"atithi/shared/constant"
	"atithi/shared/logger"
)

const summaryQuery = `
SELECT
    (SELECT COUNT(id) FROM users) AS total_users,
    (SELECT COUNT(id) FROM users WHERE created_at >= :today AND created_at < :tomorrow) AS new_users_today,
    (SELECT COUNT(id) FROM bookings WHERE created_at >= :today AND created_at < :tomorrow) AS bookings_today,
    (SELECT COUNT(id) FROM bookings WHERE check_in >= :today AND check_in < :tomorrow AND status != :cancelled) AS check_ins_today,
    (SELECT COUNT(id) FROM bookings WHERE check_out >= :today AND check_out < :tomorrow AND status != :cancelled) AS check_outs_today,
    (SELECT COUNT(id) FROM bookings WHERE check_in >= :today AND status != :cancelled) AS upcoming_bookings,
    (SELECT COALESCE(SUM(bill_paid_amount), 0) FROM payments WHERE updated_at >= :today AND updated_at < :tomorrow) AS revenue_today`

const statusBreakdownQuery = `
SELECT status, COUNT(id) AS count
FROM bookings
GROUP BY status
ORDER BY count DESC`

const bookingsPerMinuteQuery = `
SELECT date_trunc('minute', created_at) AS minute, COUNT(id) AS count
FROM bookings
WHERE created_at >= :since
GROUP BY minute
ORDER BY minute ASC`

type Dashboard interface {
	Summary(ctx context.Context, today time.Time) (model.Summary, error)
	StatusBreakdown(ctx context.Context) ([]model.StatusCount, error)
	BookingsPerMinute(ctx context.Context, since time.Time) ([]model.MinuteCount, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Summary(ctx context.Context, today time.Time) (summary model.Summary, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, summaryQuery)

	args := map[string]any{
		"today":     today,
		"tomorrow":  today.AddDate(0, 0, 1),
		"cancelled": bookingModel.StatusCancelled,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, summaryQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return summary, fmt.Errorf("failed to prepare dashboard summary query: %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &summary, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return summary, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	return summary, nil
}

func (repo *repositoryImpl) StatusBreakdown(ctx context.Context) (counts []model.StatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.StatusBreakdown")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, statusBreakdownQuery)

	err = repo.db.Read.SelectContext(ctx, &counts, statusBreakdownQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return counts, fmt.Errorf("failed to get status breakdown: %w", err)
	}

	return counts, nil
}

func (repo *repositoryImpl) BookingsPerMinute(ctx context.Context, since time.Time) (counts []model.MinuteCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.BookingsPerMinute")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, bookingsPerMinuteQuery)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, bookingsPerMinuteQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return counts, fmt.Errorf("failed to prepare bookings per minute query: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &counts, map[string]any{"since": since})
	if err != nil {
		logger.ErrorWithStack(err)

		return counts, fmt.Errorf("failed to get bookings per minute: %w", err)
	}

	return counts, nil
}
