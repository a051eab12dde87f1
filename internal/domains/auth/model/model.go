package model

import (
	"atithi/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRefreshToken = "refresh_token"
)

type Admin struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	Password     string  `db:"password"`
	RefreshToken *string `db:"refresh_token"`
	model.Metadata
}
