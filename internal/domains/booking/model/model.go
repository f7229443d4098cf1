package model

import (
	"fmt"
	"mallbook/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldUserID             = "user_id"
	FieldServiceID          = "service_id"
	FieldStoreID            = "store_id"
	FieldBookingDate        = "booking_date"
	FieldStartTime          = "start_time"
	FieldStartMinute        = "start_minute"
	FieldDurationMinutes    = "duration_minutes"
	FieldNumberOfPeople     = "number_of_people"
	FieldTotalPrice         = "total_price"
	FieldStatus             = "status"
	FieldCancelledBy        = "cancelled_by"
	FieldCancellationReason = "cancellation_reason"
	FieldCancelledAt        = "cancelled_at"
	FieldNotes              = "notes"
	FieldSpecialRequests    = "special_requests"

	CancelledByCustomer = "customer"
	CancelledByStore    = "store"
	CancelledByAdmin    = "admin"

	serviceTableName = "services"
	storeTableName   = "stores"
	userTableName    = "users"
)

// Booking is a reservation of one service slot. TotalPrice, DurationMinutes and StoreID are
// snapshotted at creation and never updated.
type Booking struct {
	ID                 string          `db:"id"`
	UserID             string          `db:"user_id"`
	ServiceID          string          `db:"service_id"`
	StoreID            string          `db:"store_id"`
	BookingDate        time.Time       `db:"booking_date"`
	StartTime          string          `db:"start_time"`
	StartMinute        int             `db:"start_minute"`
	DurationMinutes    int             `db:"duration_minutes"`
	NumberOfPeople     int             `db:"number_of_people"`
	TotalPrice         decimal.Decimal `db:"total_price"`
	Status             Status          `db:"status"`
	CancelledBy        *string         `db:"cancelled_by"`
	CancellationReason *string         `db:"cancellation_reason"`
	CancelledAt        *time.Time      `db:"cancelled_at"`
	Notes              *string         `db:"notes"`
	SpecialRequests    *string         `db:"special_requests"`
	ServiceName        *string         `column:"name"     db:"service_name"     table:"services"`
	ServiceCategory    *string         `column:"category" db:"service_category" table:"services"`
	StoreName          *string         `column:"name"     db:"store_name"       table:"stores"`
	UserName           *string         `column:"name"     db:"user_name"        table:"users"`
	UserEmail          *string         `column:"email"    db:"user_email"       table:"users"`
	UserPhone          *string         `column:"phone"    db:"user_phone"       table:"users"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %[1]s ON %[1]s.id = %[4]s.%[5]s "+
		"LEFT JOIN %[2]s ON %[2]s.id = %[4]s.%[6]s "+
		"LEFT JOIN %[3]s ON %[3]s.id = %[4]s.%[7]s",
		serviceTableName, storeTableName, userTableName, TableName, FieldServiceID, FieldStoreID, FieldUserID)
}

// EndMinute is the exclusive end of the booked interval in minutes after midnight.
func (b Booking) EndMinute() int {
	return b.StartMinute + b.DurationMinutes
}

// Overlaps reports whether [start, start+duration) intersects the booking's own interval.
func (b Booking) Overlaps(start, duration int) bool {
	return start < b.EndMinute() && b.StartMinute < start+duration
}

// OwnedBy reports whether userID made the booking.
func (b Booking) OwnedBy(userID string) bool {
	return userID != "" && b.UserID == userID
}

// CancelledByRole maps the requester role to the recorded canceller.
func CancelledByRole(role string) string {
	switch role {
	case "admin":
		return CancelledByAdmin
	case "store_manager":
		return CancelledByStore
	default:
		return CancelledByCustomer
	}
}
