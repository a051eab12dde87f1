package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	bookingModel "atithi/internal/domains/booking/model"
	"atithi/internal/domains/report/model"
	"atithi/shared/constant"
	"atithi/shared/logger"
)

const totalRevenueQuery = `
SELECT COALESCE(SUM(bill_paid_amount), 0) AS revenue
FROM payments`

const revenueInRangeQuery = `
SELECT COALESCE(SUM(bill_paid_amount), 0) AS revenue
FROM payments
WHERE created_at >= :from AND created_at <= :to`

const bookingCountQuery = `
SELECT COUNT(id)
FROM bookings
WHERE created_at >= :from AND created_at <= :to`

const occupancyQuery = `
SELECT
    (SELECT COALESCE(SUM(GREATEST(total_rooms, 1)), 0) FROM rooms) AS total_rooms,
    (SELECT COUNT(id)
     FROM bookings
     WHERE check_in < :tomorrow AND check_out > :today AND status != :cancelled) AS occupied_rooms`

const revenueTrendQuery = `
SELECT date_trunc('day', created_at) AS day,
       COALESCE(SUM(bill_paid_amount), 0) AS revenue
FROM payments
WHERE created_at >= :from AND created_at <= :to
GROUP BY day
ORDER BY day ASC`

const revenueByRoomQuery = `
SELECT r.room_name,
       COALESCE(SUM(p.bill_paid_amount), 0) AS revenue
FROM payments p
JOIN bookings b ON b.id = p.booking_id
JOIN rooms r ON r.id = b.room_id
WHERE p.created_at >= :from AND p.created_at <= :to
GROUP BY r.room_name
ORDER BY revenue DESC`

const paymentBucketsQuery = `
SELECT status,
       COUNT(id) AS count,
       COALESCE(SUM(bill_amount), 0) AS total_bill_amount,
       COALESCE(SUM(bill_paid_amount), 0) AS paid_amount,
       COALESCE(SUM(bill_amount), 0) - COALESCE(SUM(bill_paid_amount), 0) AS pending_amount
FROM payments
GROUP BY status
ORDER BY count DESC`

type Report interface {
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueInRange(ctx context.Context, from, to time.Time) (float64, error)
	BookingCount(ctx context.Context, from, to time.Time) (int, error)
	Occupancy(ctx context.Context, today time.Time) (model.Occupancy, error)
	RevenueTrend(ctx context.Context, from, to time.Time) ([]model.TrendPoint, error)
	RevenueByRoom(ctx context.Context, from, to time.Time) ([]model.RoomRevenue, error)
	PaymentBuckets(ctx context.Context) ([]model.PaymentBucket, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) TotalRevenue(ctx context.Context) (revenue float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.TotalRevenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, totalRevenueQuery)

	err = repo.db.Read.GetContext(ctx, &revenue, totalRevenueQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return revenue, fmt.Errorf("failed to get total revenue: %w", err)
	}

	return revenue, nil
}

func (repo *repositoryImpl) RevenueInRange(ctx context.Context, from, to time.Time) (revenue float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RevenueInRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, revenueInRangeQuery)

	err = repo.getNamed(ctx, &revenue, revenueInRangeQuery, rangeArgs(from, to))
	if err != nil {
		return revenue, fmt.Errorf("failed to get revenue in range: %w", err)
	}

	return revenue, nil
}

func (repo *repositoryImpl) BookingCount(ctx context.Context, from, to time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.BookingCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, bookingCountQuery)

	err = repo.getNamed(ctx, &count, bookingCountQuery, rangeArgs(from, to))
	if err != nil {
		return count, fmt.Errorf("failed to count bookings in range: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) Occupancy(ctx context.Context, today time.Time) (occupancy model.Occupancy, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, occupancyQuery)

	args := map[string]any{
		"today":     today,
		"tomorrow":  today.AddDate(0, 0, 1),
		"cancelled": bookingModel.StatusCancelled,
	}

	err = repo.getNamed(ctx, &occupancy, occupancyQuery, args)
	if err != nil {
		return occupancy, fmt.Errorf("failed to get occupancy: %w", err)
	}

	return occupancy, nil
}

func (repo *repositoryImpl) RevenueTrend(ctx context.Context, from, to time.Time) (points []model.TrendPoint, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RevenueTrend")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, revenueTrendQuery)

	err = repo.selectNamed(ctx, &points, revenueTrendQuery, rangeArgs(from, to))
	if err != nil {
		return points, fmt.Errorf("failed to get revenue trend: %w", err)
	}

	return points, nil
}

func (repo *repositoryImpl) RevenueByRoom(ctx context.Context, from, to time.Time) (revenues []model.RoomRevenue, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RevenueByRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, revenueByRoomQuery)

	err = repo.selectNamed(ctx, &revenues, revenueByRoomQuery, rangeArgs(from, to))
	if err != nil {
		return revenues, fmt.Errorf("failed to get revenue by room: %w", err)
	}

	return revenues, nil
}

func (repo *repositoryImpl) PaymentBuckets(ctx context.Context) (buckets []model.PaymentBucket, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.PaymentBuckets")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, paymentBucketsQuery)

	err = repo.db.Read.SelectContext(ctx, &buckets, paymentBucketsQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return buckets, fmt.Errorf("failed to get payment buckets: %w", err)
	}

	return buckets, nil
}

func (repo *repositoryImpl) getNamed(ctx context.Context, dest any, query string, args map[string]any) error {
	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare query: %w", err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, dest, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) selectNamed(ctx context.Context, dest any, query string, args map[string]any) error {
	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare query: %w", err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, dest, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func rangeArgs(from, to time.Time) map[string]any {
	return map[string]any{
		"from": from,
		"to":   to,
	}
}
