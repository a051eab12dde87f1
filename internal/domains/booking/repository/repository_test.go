package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"atithi/internal/domains/booking/model"
	"atithi/internal/domains/booking/repository"
)

func TestOverlapFilter(t *testing.T) {
	checkIn := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	t.Run("half-open range uses strict comparisons", func(t *testing.T) {
		filter := repository.OverlapFilter(100, checkIn, checkOut, 0)

		clause, args := filter.GetWhereClause()

		// A booking ending on the requested check-in day, or starting on the
		// requested check-out day, must not count as overlapping.
		assert.Contains(t, clause, "bookings.check_in < :range_end")
		assert.Contains(t, clause, "bookings.check_out > :range_start")
		assert.NotContains(t, clause, "check_in <=")
		assert.NotContains(t, clause, "check_out >=")

		assert.Equal(t, checkOut, args["range_end"])
		assert.Equal(t, checkIn, args["range_start"])
	})

	t.Run("matches the room and skips cancelled bookings", func(t *testing.T) {
		filter := repository.OverlapFilter(100, checkIn, checkOut, 0)

		clause, args := filter.GetWhereClause()

		assert.Contains(t, clause, "bookings.room_id = :room_id")
		assert.Contains(t, clause, "bookings.status != :status")
		assert.Equal(t, int64(100), args["room_id"])
		assert.Equal(t, model.StatusCancelled, args["status"])
	})

	t.Run("excludes the booking being moved", func(t *testing.T) {
		filter := repository.OverlapFilter(100, checkIn, checkOut, 42)

		clause, args := filter.GetWhereClause()

		assert.Contains(t, clause, "bookings.id != :exclude_id")
		assert.Equal(t, int64(42), args["exclude_id"])
	})

	t.Run("no exclusion clause without an id", func(t *testing.T) {
		filter := repository.OverlapFilter(100, checkIn, checkOut, 0)

		clause, _ := filter.GetWhereClause()

		assert.NotContains(t, clause, "exclude_id")
	})
}
