package model

import (
	"fmt"
	"mallbook/shared/model"
)

const (
	TableName  = "stores"
	EntityName = "store"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldFloor       = "floor"
	FieldUnit        = "unit"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldManagerID   = "manager_id"
	FieldImage       = "image"
	FieldIsActive    = "is_active"

	userTableName = "users"
)

type Store struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	Floor       string  `db:"floor"`
	Unit        string  `db:"unit"`
	Phone       *string `db:"phone"`
	Email       *string `db:"email"`
	ManagerID   *string `db:"manager_id"`
	Image       *string `db:"image"`
	IsActive    bool    `db:"is_active"`
	ManagerName *string `column:"name"      db:"manager_name" table:"users"`
	model.Metadata
}

func (Store) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %[1]s ON %[1]s.id = %[2]s.%[3]s", userTableName, TableName, FieldManagerID)
}

// ManagedBy reports whether userID is the store's manager.
func (s Store) ManagedBy(userID string) bool {
	return s.ManagerID != nil && userID != "" && *s.ManagerID == userID
}
