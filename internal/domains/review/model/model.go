package model

import "time"

const (
	TableName = "reviews"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldRoomID    = "room_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
	FieldCreatedAt = "created_at"
)

// Review rows are written by the guest-facing site; this service only reads
// them.
type Review struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	RoomID    int64     `db:"room_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
	UserName  string    `db:"user_name"`
	RoomName  string    `db:"room_name"`
}
