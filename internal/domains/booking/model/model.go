package model

import (
	"slices"
	"time"

	"atithi/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldRoomID   = "room_id"
	FieldUserID   = "user_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldStatus   = "status"
	FieldAdults   = "adults"
	FieldChildren = "children"
)

const (
	StatusConfirmed   = "confirmed"
	StatusRescheduled = "rescheduled"
	StatusCheckedIn   = "checked in"
	StatusCheckedOut  = "checked out"
	StatusCancelled   = "cancelled"
)

// statusTransitions is the closed transition table. Statuses absent from the
// map are terminal.
var statusTransitions = map[string][]string{
	StatusConfirmed:   {StatusRescheduled, StatusCheckedIn, StatusCancelled},
	StatusRescheduled: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:   {StatusCheckedOut, StatusCancelled},
}

func ValidStatus(status string) bool {
	switch status {
	case StatusConfirmed, StatusRescheduled, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

func CanTransition(from, to string) bool {
	return slices.Contains(statusTransitions[from], to)
}

type Booking struct {
	ID       int64     `db:"id"`
	RoomID   int64     `db:"room_id"`
	UserID   int64     `db:"user_id"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Status   string    `db:"status"`
	Adults   int       `db:"adults"`
	Children int       `db:"children"`
	model.Metadata
}

// BookingDetail is a booking joined with its guest, room, and most recent
// payment row. Payment columns are nullable because the payment row is
// best-effort.
type BookingDetail struct {
	Booking
	UserName       string   `db:"user_name"`
	UserEmail      string   `db:"user_email"`
	WhatsappNumber string   `db:"whatsapp_number"`
	RoomName       string   `db:"room_name"`
	RoomNumber     string   `db:"room_number"`
	RoomType       string   `db:"room_type"`
	PaymentMethod  *string  `db:"payment_method"`
	PaymentStatus  *string  `db:"payment_status"`
	BillAmount     *float64 `db:"bill_amount"`
	BillPaidAmount *float64 `db:"bill_paid_amount"`
}
