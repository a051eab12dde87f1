package model

import (
	"time"

	"atithi/shared/model"
)

const (
	TableName  = "room_offers"
	EntityName = "offer"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldTitle           = "title"
	FieldDiscountPercent = "discount_percent"
	FieldOfferPrice      = "offer_price"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldIsActive        = "is_active"
)

type Offer struct {
	ID              int64      `db:"id"`
	RoomID          int64      `db:"room_id"`
	Title           string     `db:"title"`
	DiscountPercent float64    `db:"discount_percent"`
	OfferPrice      *float64   `db:"offer_price"`
	StartDate       *time.Time `db:"start_date"`
	EndDate         *time.Time `db:"end_date"`
	IsActive        bool       `db:"is_active"`
	model.Metadata
}
