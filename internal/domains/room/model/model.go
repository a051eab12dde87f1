package model

import (
	"atithi/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomName    = "room_name"
	FieldRoomType    = "room_type"
	FieldRoomNumber  = "room_number"
	FieldPrice       = "price"
	FieldTotalRooms  = "total_rooms"
	FieldGuests      = "guests"
	FieldRoomSize    = "room_size"
	FieldDescription = "description"
	FieldImageURLs   = "image_urls"
	FieldAmenities   = "amenities"
)

type Room struct {
	ID          int64          `db:"id"`
	RoomName    string         `db:"room_name"`
	RoomType    string         `db:"room_type"`
	RoomNumber  string         `db:"room_number"`
	Price       float64        `db:"price"`
	TotalRooms  int            `db:"total_rooms"`
	Guests      int            `db:"guests"`
	RoomSize    string         `db:"room_size"`
	Description string         `db:"description"`
	ImageURLs   pq.StringArray `db:"image_urls"`
	Amenities   pq.StringArray `db:"amenities"`
	model.Metadata
}

// Inventory returns the number of physical units of this room type, treating
// an unset count as a single unit.
func (r Room) Inventory() int {
	if r.TotalRooms <= 0 {
		return 1
	}

	return r.TotalRooms
}
