package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atithi/internal/domains/booking/model"
)

func TestValidStatus(t *testing.T) {
	valid := []string{
		model.StatusConfirmed,
		model.StatusRescheduled,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
		model.StatusCancelled,
	}

	for _, status := range valid {
		assert.True(t, model.ValidStatus(status), status)
	}

	assert.False(t, model.ValidStatus("pending"))
	assert.False(t, model.ValidStatus(""))
	assert.False(t, model.ValidStatus("CONFIRMED"))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "confirmed to rescheduled", from: model.StatusConfirmed, to: model.StatusRescheduled, want: true},
		{name: "confirmed to checked in", from: model.StatusConfirmed, to: model.StatusCheckedIn, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to checked out skips check-in", from: model.StatusConfirmed, to: model.StatusCheckedOut, want: false},
		{name: "rescheduled to checked in", from: model.StatusRescheduled, to: model.StatusCheckedIn, want: true},
		{name: "rescheduled to cancelled", from: model.StatusRescheduled, to: model.StatusCancelled, want: true},
		{name: "rescheduled to checked out", from: model.StatusRescheduled, to: model.StatusCheckedOut, want: false},
		{name: "checked in to checked out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: true},
		{name: "checked in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, want: true},
		{name: "checked in back to confirmed", from: model.StatusCheckedIn, to: model.StatusConfirmed, want: false},
		{name: "checked out is terminal", from: model.StatusCheckedOut, to: model.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
		{name: "cancelled cannot be re-cancelled", from: model.StatusCancelled, to: model.StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
