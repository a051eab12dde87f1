package model

import (
	"fmt"
	"strings"

	"atithi/shared/constant"
	"atithi/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldWhatsappNumber = "whatsapp_number"
)

type User struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	WhatsappNumber string `db:"whatsapp_number"`
	model.Metadata
}

// PlaceholderEmail synthesizes an address for walk-in guests who booked
// without one.
func PlaceholderEmail(unixMilli int64) string {
	return fmt.Sprintf("guest-%d%s", unixMilli, constant.GuestEmailSuffix)
}

// NormalizeWhatsappNumber strips everything but ASCII digits and truncates to
// the storage limit, falling back to "0" when nothing remains. Only '0'-'9'
// count as digits, so the truncation can never split a rune.
func NormalizeWhatsappNumber(raw string) string {
	var builder strings.Builder

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}

	digits := builder.String()
	if len(digits) > constant.WhatsappNumberMaxLen {
		digits = digits[:constant.WhatsappNumberMaxLen]
	}

	if digits == "" {
		return constant.WhatsappNumberEmpty
	}

	return digits
}
