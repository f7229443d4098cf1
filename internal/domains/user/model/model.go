package model

import (
	"mallbook/shared/model"
	"strings"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Name      string     `db:"name"`
	Phone     *string    `db:"phone"`
	Role      string     `db:"role"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}

// Requester is the authenticated caller of a booking operation. StoreID is set only for store
// managers that manage a store.
type Requester struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	StoreID string `json:"store_id,omitempty"`
}

// NormalizeEmail is the canonical form stored in users.email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
