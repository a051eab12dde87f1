package model

import (
	"atithi/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID             = "id"
	FieldBookingID      = "booking_id"
	FieldUserID         = "user_id"
	FieldMethod         = "method"
	FieldStatus         = "status"
	FieldCurrency       = "currency"
	FieldBillAmount     = "bill_amount"
	FieldBillPaidAmount = "bill_paid_amount"
)

const (
	MethodPartialOnline = "partial_online"
	MethodFullOnline    = "full_online"
	MethodOffline       = "offline"

	StatusPending     = "pending"
	StatusPartialPaid = "partial_paid"
	StatusPaid        = "paid"
)

type Payment struct {
	ID             int64   `db:"id"`
	BookingID      int64   `db:"booking_id"`
	UserID         int64   `db:"user_id"`
	Method         string  `db:"method"`
	Status         string  `db:"status"`
	Currency       string  `db:"currency"`
	BillAmount     float64 `db:"bill_amount"`
	BillPaidAmount float64 `db:"bill_paid_amount"`
	model.Metadata
}
