package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mallbook/internal/domains/booking/model"
	"mallbook/internal/domains/booking/model/dto"
	catalogModel "mallbook/internal/domains/catalog/model"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name   string
		price  string
		people int
		want   string
	}{
		{name: "single person", price: "25.00", people: 1, want: "25"},
		{name: "group", price: "19.99", people: 3, want: "59.97"},
		{name: "free service", price: "0", people: 4, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dto.TotalPrice(decimal.RequireFromString(tt.price), tt.people)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	storeName := "Salon"
	service := catalogModel.Service{
		ID:              "service-1",
		StoreID:         "store-1",
		Name:            "Haircut",
		Category:        "beauty",
		Price:           decimal.RequireFromString("25.00"),
		DurationMinutes: 30,
		StoreName:       &storeName,
	}

	req := dto.CreateBookingRequest{ServiceID: "service-1", Date: "2030-01-07", Time: "10:00", NumberOfPeople: 2}
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

	booking := req.ToModel("user-1", date, 600, service)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, "store-1", booking.StoreID)
	assert.Equal(t, "10:00", booking.StartTime)
	assert.Equal(t, 600, booking.StartMinute)
	assert.Equal(t, 30, booking.DurationMinutes)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.True(t, decimal.NewFromInt(50).Equal(booking.TotalPrice))
}

func TestBookingResponse_FromModel(t *testing.T) {
	reason := "Cancelled by user"
	cancelledAt := time.Date(2030, 1, 6, 9, 0, 0, 0, time.UTC)

	var res dto.BookingResponse
	res.FromModel(model.Booking{
		ID:                 "booking-1",
		BookingDate:        time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
		StartTime:          "10:00",
		StartMinute:        600,
		DurationMinutes:    45,
		Status:             model.StatusCancelled,
		CancellationReason: &reason,
		CancelledAt:        &cancelledAt,
	})

	assert.Equal(t, "2030-01-07", res.BookingDate)
	assert.Equal(t, "10:45", res.EndTime)
	assert.Equal(t, "cancelled", res.Status)
	assert.NotNil(t, res.CancelledAt)
}
