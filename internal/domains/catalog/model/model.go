package model

import (
	"fmt"
	"mallbook/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldStoreID         = "store_id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldCategory        = "category"
	FieldPrice           = "price"
	FieldDurationMinutes = "duration_minutes"
	FieldCapacity        = "capacity"
	FieldIsActive        = "is_active"
	FieldAvailability    = "availability"
	FieldFeatures        = "features"
	FieldImage           = "image"
	FieldStoreName       = "store_name"

	MinDurationMinutes = 15
	DefaultCapacity    = 1

	storeTableName = "stores"
)

// Categories lists the service categories accepted by the catalog.
var Categories = []string{"restaurant", "entertainment", "beauty", "fitness", "shopping", "services", "facilities"}

// Service is a bookable offering of a store.
type Service struct {
	ID              string          `db:"id"`
	StoreID         string          `db:"store_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Category        string          `db:"category"`
	Price           decimal.Decimal `db:"price"`
	DurationMinutes int             `db:"duration_minutes"`
	Capacity        int             `db:"capacity"`
	IsActive        bool            `db:"is_active"`
	Availability    Availability    `db:"availability"`
	Features        pq.StringArray  `db:"features"`
	Image           *string         `db:"image"`
	StoreName       *string         `column:"name" db:"store_name" table:"stores"`
	model.Metadata
}

func (Service) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %[1]s ON %[1]s.id = %[2]s.%[3]s", storeTableName, TableName, FieldStoreID)
}
