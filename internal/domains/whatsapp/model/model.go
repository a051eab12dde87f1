package model

import "time"

const (
	TableName = "whatsapp_messages"

	SenderTypeUser = "user"
	SenderTypeBot  = "bot"
)

// Message rows are written by the chat webhook pipeline; this service only
// reads them.
type Message struct {
	ID         int64     `db:"id"`
	Name       *string   `db:"name"`
	FromNumber string    `db:"fromnumber"`
	ToNumber   string    `db:"tonumber"`
	Message    string    `db:"message"`
	SenderType string    `db:"sender_type"`
	CreatedAt  time.Time `db:"created_at"`
}

// Contact is the latest inbound message per phone number.
type Contact struct {
	Name        *string   `db:"name"`
	Phone       string    `db:"phone"`
	SenderType  string    `db:"sender_type"`
	LastMessage string    `db:"last_message"`
	CreatedAt   time.Time `db:"created_at"`
}
