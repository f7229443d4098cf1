package dto

import (
	"mallbook/internal/domains/booking/model"
	catalogModel "mallbook/internal/domains/catalog/model"
	"mallbook/shared"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	gModel "mallbook/shared/model"
	"mallbook/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	ServiceID       string  `json:"service_id"                 validate:"required,uuid"`
	Date            string  `json:"date"                       validate:"required,date"`
	Time            string  `json:"time"                       validate:"required,clock"`
	NumberOfPeople  int     `json:"number_of_people"           validate:"required,min=1"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
}

// ToModel snapshots the service's duration, store and price into a pending booking.
func (c *CreateBookingRequest) ToModel(userID string, date time.Time, startMinute int, service catalogModel.Service) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		UserID:          userID,
		ServiceID:       service.ID,
		StoreID:         service.StoreID,
		BookingDate:     date,
		StartTime:       catalogModel.FormatClock(startMinute),
		StartMinute:     startMinute,
		DurationMinutes: service.DurationMinutes,
		NumberOfPeople:  c.NumberOfPeople,
		TotalPrice:      TotalPrice(service.Price, c.NumberOfPeople),
		Status:          model.StatusPending,
		SpecialRequests: c.SpecialRequests,
		ServiceName:     &service.Name,
		ServiceCategory: &service.Category,
		StoreName:       service.StoreName,
		Metadata:        gModel.NewMetadata(userID),
	}
}

// TotalPrice is price times party size, rounded to cents.
func TotalPrice(price decimal.Decimal, people int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(people))).Round(2)
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status"          validate:"required,oneof=confirmed completed cancelled"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type BookingResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	UserName           *string         `json:"user_name,omitempty"`
	UserEmail          *string         `json:"user_email,omitempty"`
	UserPhone          *string         `json:"user_phone,omitempty"`
	ServiceID          string          `json:"service_id"`
	ServiceName        *string         `json:"service_name,omitempty"`
	ServiceCategory    *string         `json:"service_category,omitempty"`
	StoreID            string          `json:"store_id"`
	StoreName          *string         `json:"store_name,omitempty"`
	BookingDate        string          `json:"booking_date"`
	StartTime          string          `json:"start_time"`
	EndTime            string          `json:"end_time"`
	DurationMinutes    int             `json:"duration_minutes"`
	NumberOfPeople     int             `json:"number_of_people"`
	TotalPrice         decimal.Decimal `json:"total_price"                   swaggertype:"number"`
	Status             string          `json:"status"`
	CancelledBy        *string         `json:"cancelled_by,omitempty"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	CancelledAt        *string         `json:"cancelled_at,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	SpecialRequests    *string         `json:"special_requests,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.UserEmail = model.UserEmail
	r.UserPhone = model.UserPhone
	r.ServiceID = model.ServiceID
	r.ServiceName = model.ServiceName
	r.ServiceCategory = model.ServiceCategory
	r.StoreID = model.StoreID
	r.StoreName = model.StoreName
	r.BookingDate = model.BookingDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime
	r.EndTime = catalogModel.FormatClock(model.EndMinute() % constant.MinutesPerDay)
	r.DurationMinutes = model.DurationMinutes
	r.NumberOfPeople = model.NumberOfPeople
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status.String()
	r.CancelledBy = model.CancelledBy
	r.CancellationReason = model.CancellationReason
	r.Notes = model.Notes
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)

	if model.CancelledAt != nil {
		cancelledAt := timezone.Format(*model.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
