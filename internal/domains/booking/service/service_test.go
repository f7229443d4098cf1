package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mallbook/config"
	"mallbook/infras/otel/mocks"
	bookingMocks "mallbook/internal/domains/booking/mocks"
	"mallbook/internal/domains/booking/model"
	"mallbook/internal/domains/booking/model/dto"
	"mallbook/internal/domains/booking/repository"
	"mallbook/internal/domains/booking/service"
	catalogMocks "mallbook/internal/domains/catalog/mocks"
	catalogModel "mallbook/internal/domains/catalog/model"
	userModel "mallbook/internal/domains/user/model"
	"mallbook/shared/cache"
	cacheMocks "mallbook/shared/cache/mocks"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/failure"
	"mallbook/shared/timezone"
)

var (
	customer      = userModel.Requester{ID: "customer-1", Role: constant.RoleCustomer}
	otherCustomer = userModel.Requester{ID: "customer-2", Role: constant.RoleCustomer}
	managerA      = userModel.Requester{ID: "manager-a", Role: constant.RoleStoreManager, StoreID: "store-a"}
	managerB      = userModel.Requester{ID: "manager-b", Role: constant.RoleStoreManager, StoreID: "store-b"}
	admin         = userModel.Requester{ID: "admin-1", Role: constant.RoleAdmin}
)

type fixture struct {
	repo        *bookingMocks.MockBooking
	catalogRepo *catalogMocks.MockService
	cache       *cacheMocks.MockRedisCache
	publisher   *bookingMocks.MockPublisher
	svc         service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        bookingMocks.NewMockBooking(ctrl),
		catalogRepo: catalogMocks.NewMockService(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		publisher:   bookingMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.DefaultCancelReason = "Cancelled by user"

	f.svc = service.New(f.repo, f.catalogRepo, cfg, f.cache, mocks.NewOtel(), f.publisher)

	return f
}

// expectSideEffects allows the async cache invalidation and event publishing.
func (f fixture) expectSideEffects() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Created(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// nextWeekday returns the first date strictly after today falling on weekday.
func nextWeekday(weekday time.Weekday) string {
	date := timezone.Now().AddDate(0, 0, 1)
	for date.Weekday() != weekday {
		date = date.AddDate(0, 0, 1)
	}

	return date.Format(constant.DateOnlyFormat)
}

func haircut() catalogModel.Service {
	availability := catalogModel.DefaultAvailability()
	availability[catalogModel.DayKey(time.Monday)] = catalogModel.Window{Open: "10:00", Close: "22:00", IsOpen: true}
	availability[catalogModel.DayKey(time.Tuesday)] = catalogModel.Window{Open: "10:00", Close: "22:00", IsOpen: false}

	storeName := "Style Studio"

	return catalogModel.Service{
		ID:              "service-1",
		StoreID:         "store-a",
		Name:            "Haircut & Styling",
		Category:        "beauty",
		Price:           decimal.RequireFromString("35.50"),
		DurationMinutes: 45,
		Capacity:        10,
		IsActive:        true,
		Availability:    availability,
		StoreName:       &storeName,
	}
}

// existingAt10 is the pending booking occupying [10:00, 10:45).
func existingAt10() model.Booking {
	return model.Booking{ID: "existing", ServiceID: "service-1", StartMinute: 600, DurationMinutes: 45, Status: model.StatusPending}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)
	f.expectSideEffects()

	monday := nextWeekday(time.Monday)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		check     func(t *testing.T, res dto.BookingResponse)
		wantErr   error
		wantCode  int
	}{
		{
			name: "haircut on monday at opening",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "10:00", NumberOfPeople: 2},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)

				var inserted model.Booking

				f.repo.EXPECT().
					InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking, check repository.ConflictFunc) error {
						inserted = booking

						return check(nil)
					})

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
						return inserted, nil
					})
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "pending", res.Status)
				assert.Equal(t, "10:00", res.StartTime)
				assert.Equal(t, "10:45", res.EndTime)
				assert.Equal(t, 45, res.DurationMinutes)
				assert.Equal(t, "store-a", res.StoreID)
				assert.Equal(t, "customer-1", res.UserID)
				assert.True(t, decimal.RequireFromString("71.00").Equal(res.TotalPrice), "got %s", res.TotalPrice)
			},
		},
		{
			name: "starts inside an existing booking",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "10:20", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
				f.repo.EXPECT().
					InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Booking, check repository.ConflictFunc) error {
						return check([]model.Booking{existingAt10()})
					})
			},
			wantErr:  service.ErrSlotConflict,
			wantCode: http.StatusConflict,
		},
		{
			name: "ends inside an existing booking",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "10:00", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
				f.repo.EXPECT().
					InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Booking, check repository.ConflictFunc) error {
						later := model.Booking{ID: "later", StartMinute: 630, DurationMinutes: 45, Status: model.StatusConfirmed}

						return check([]model.Booking{later})
					})
			},
			wantErr:  service.ErrSlotConflict,
			wantCode: http.StatusConflict,
		},
		{
			name: "back to back with an existing booking",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "10:45", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
				f.repo.EXPECT().
					InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Booking, check repository.ConflictFunc) error {
						return check([]model.Booking{existingAt10()})
					})
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "10:45", res.StartTime)
				assert.Equal(t, "11:30", res.EndTime)
			},
		},
		{
			name: "race lost to the exclusion constraint",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "11:00", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
				f.repo.EXPECT().
					InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrSlotConflict)
			},
			wantErr:  service.ErrSlotConflict,
			wantCode: http.StatusConflict,
		},
		{
			name: "before opening",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "09:00", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
			},
			wantErr:  service.ErrOutsideOperatingHours,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "exactly at closing",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "22:00", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
				f.repo.EXPECT().
					InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Booking, check repository.ConflictFunc) error {
						return check(nil)
					})
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "22:00", res.StartTime)
			},
		},
		{
			name: "yesterday",
			req: dto.CreateBookingRequest{
				ServiceID: "service-1", Time: "10:00", NumberOfPeople: 1,
				Date: timezone.Now().AddDate(0, 0, -1).Format(constant.DateOnlyFormat),
			},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
			},
			wantErr:  service.ErrPastDate,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "closed on tuesday",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: nextWeekday(time.Tuesday), Time: "12:00", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
			},
			wantErr:  service.ErrClosedOnDay,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "party larger than capacity",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "12:00", NumberOfPeople: 11},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil)
			},
			wantErr:  service.ErrCapacityExceeded,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "inactive service",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "12:00", NumberOfPeople: 1},
			setupMock: func() {
				inactive := haircut()
				inactive.IsActive = false

				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  service.ErrServiceUnavailable,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown service",
			req:  dto.CreateBookingRequest{ServiceID: "service-9", Date: monday, Time: "12:00", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(catalogModel.Service{}, nil)
			},
			wantErr:  service.ErrServiceUnavailable,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "catalog lookup error",
			req:  dto.CreateBookingRequest{ServiceID: "service-1", Date: monday, Time: "12:00", NumberOfPeople: 1},
			setupMock: func() {
				f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(catalogModel.Service{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(context.Background(), customer.ID, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestBookingService_Create_RejectionIsIdempotent(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateBookingRequest{ServiceID: "service-1", Date: nextWeekday(time.Monday), Time: "10:20", NumberOfPeople: 2}

	f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(haircut(), nil).Times(2)
	f.repo.EXPECT().
		InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Booking, check repository.ConflictFunc) error {
			return check([]model.Booking{existingAt10()})
		}).
		Times(2)

	for range 2 {
		_, err := f.svc.Create(context.Background(), customer.ID, req)
		assert.ErrorIs(t, err, service.ErrSlotConflict)
	}
}

func TestBookingService_Create_PriceIsFrozen(t *testing.T) {
	f := newFixture(t)
	f.expectSideEffects()

	svc := haircut()

	var inserted model.Booking

	f.catalogRepo.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(svc, nil)
	f.repo.EXPECT().
		InsertExclusive(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking, check repository.ConflictFunc) error {
			inserted = booking

			return check(nil)
		})
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	req := dto.CreateBookingRequest{ServiceID: "service-1", Date: nextWeekday(time.Monday), Time: "15:00", NumberOfPeople: 3}

	res, err := f.svc.Create(context.Background(), customer.ID, req)
	assert.NoError(t, err)

	// a later price change on the service does not reach the booking
	svc.Price = decimal.RequireFromString("99.99")

	want := decimal.RequireFromString("106.50")
	assert.True(t, want.Equal(inserted.TotalPrice))
	assert.True(t, want.Equal(res.TotalPrice))

	time.Sleep(10 * time.Millisecond)
}

func bookingIn(status model.Status) model.Booking {
	return model.Booking{
		ID:              "booking-1",
		UserID:          customer.ID,
		ServiceID:       "service-1",
		StoreID:         "store-a",
		BookingDate:     time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		StartMinute:     600,
		DurationMinutes: 45,
		NumberOfPeople:  2,
		TotalPrice:      decimal.RequireFromString("71.00"),
		Status:          status,
	}
}

func TestBookingService_Cancel(t *testing.T) {
	f := newFixture(t)
	f.expectSideEffects()

	tests := []struct {
		name            string
		requester       userModel.Requester
		reason          string
		setupMock       func()
		wantCancelledBy string
		wantReason      string
		wantErr         error
	}{
		{
			name:      "customer cancels their pending booking",
			requester: customer,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusPending), nil)
				f.repo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-1", model.StatusPending, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) error {
						assert.Equal(t, "cancelled", fields[model.FieldStatus])
						assert.Equal(t, model.CancelledByCustomer, fields[model.FieldCancelledBy])
						assert.Equal(t, "Cancelled by user", fields[model.FieldCancellationReason])
						assert.Contains(t, fields, model.FieldCancelledAt)

						return nil
					})
			},
			wantCancelledBy: model.CancelledByCustomer,
			wantReason:      "Cancelled by user",
		},
		{
			name:      "second cancel",
			requester: customer,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCancelled), nil)
			},
			wantErr: service.ErrAlreadyCancelled,
		},
		{
			name:      "completed booking",
			requester: admin,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCompleted), nil)
			},
			wantErr: service.ErrCannotCancelCompleted,
		},
		{
			name:      "manager of the store cancels a confirmed booking",
			requester: managerA,
			reason:    "Stylist unavailable",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusConfirmed), nil)
				f.repo.EXPECT().UpdateStatus(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).Return(nil)
			},
			wantCancelledBy: model.CancelledByStore,
			wantReason:      "Stylist unavailable",
		},
		{
			name:      "admin cancels",
			requester: admin,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusPending), nil)
				f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCancelledBy: model.CancelledByAdmin,
			wantReason:      "Cancelled by user",
		},
		{
			name:      "another customer",
			requester: otherCustomer,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusPending), nil)
			},
			wantErr: service.ErrNotAuthorized,
		},
		{
			name:      "manager of another store",
			requester: managerB,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusPending), nil)
			},
			wantErr: service.ErrNotAuthorized,
		},
		{
			name:      "status changed concurrently",
			requester: customer,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusPending), nil)
				f.repo.EXPECT().
					UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrStatusChanged)
			},
			wantErr: service.ErrIllegalTransition,
		},
		{
			name:      "missing booking",
			requester: customer,
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Cancel(context.Background(), "booking-1", tt.requester, tt.reason)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "cancelled", res.Status)
			assert.Equal(t, tt.wantCancelledBy, *res.CancelledBy)
			assert.Equal(t, tt.wantReason, *res.CancellationReason)
			assert.NotNil(t, res.CancelledAt)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	f.expectSideEffects()

	notes := "Customer requested a senior stylist"

	tests := []struct {
		name      string
		current   model.Status
		requester userModel.Requester
		req       dto.UpdateStatusRequest
		setupMock func()
		want      string
		wantErr   error
	}{
		{
			name:      "manager confirms with notes",
			current:   model.StatusPending,
			requester: managerA,
			req:       dto.UpdateStatusRequest{Status: "confirmed", Notes: &notes},
			setupMock: func() {
				f.repo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-1", model.StatusPending, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) error {
						assert.Equal(t, "confirmed", fields[model.FieldStatus])
						assert.Equal(t, notes, fields[model.FieldNotes])

						return nil
					})
			},
			want: "confirmed",
		},
		{
			name:      "admin completes a confirmed booking",
			current:   model.StatusConfirmed,
			requester: admin,
			req:       dto.UpdateStatusRequest{Status: "completed"},
			setupMock: func() {
				f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), model.StatusConfirmed, gomock.Any()).Return(nil)
			},
			want: "completed",
		},
		{
			name:      "admin skips confirmed",
			current:   model.StatusPending,
			requester: admin,
			req:       dto.UpdateStatusRequest{Status: "completed"},
			setupMock: func() {},
			wantErr:   service.ErrIllegalTransition,
		},
		{
			name:      "owner cannot update status",
			current:   model.StatusPending,
			requester: customer,
			req:       dto.UpdateStatusRequest{Status: "confirmed"},
			setupMock: func() {},
			wantErr:   service.ErrNotAuthorized,
		},
		{
			name:      "manager of another store",
			current:   model.StatusPending,
			requester: managerB,
			req:       dto.UpdateStatusRequest{Status: "confirmed"},
			setupMock: func() {},
			wantErr:   service.ErrNotAuthorized,
		},
		{
			name:      "unknown status",
			current:   model.StatusPending,
			requester: admin,
			req:       dto.UpdateStatusRequest{Status: "archived"},
			setupMock: func() {},
			wantErr:   service.ErrIllegalTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(tt.current), nil)
			tt.setupMock()

			res, err := f.svc.UpdateStatus(context.Background(), "booking-1", tt.requester, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

func TestBookingService_NoBackwardTransitions(t *testing.T) {
	f := newFixture(t)

	requesters := []userModel.Requester{customer, otherCustomer, managerA, managerB, admin}
	targets := []string{"pending", "confirmed", "completed", "cancelled"}

	for _, current := range []model.Status{model.StatusCompleted, model.StatusCancelled} {
		for _, requester := range requesters {
			for _, target := range targets {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(current), nil)

				_, err := f.svc.UpdateStatus(context.Background(), "booking-1", requester, dto.UpdateStatusRequest{Status: target})
				assert.Error(t, err, "%s -> %s by %s", current, target, requester.ID)
			}

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(current), nil)

			_, err := f.svc.Cancel(context.Background(), "booking-1", requester, "")
			assert.Error(t, err, "cancel %s by %s", current, requester.ID)
		}
	}
}

func TestBookingService_Get(t *testing.T) {
	f := newFixture(t)
	f.expectSideEffects()

	tests := []struct {
		name      string
		requester userModel.Requester
		setupMock func()
		wantErr   error
	}{
		{
			name:      "owner reads from the repository",
			requester: customer,
			setupMock: func() {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:booking-1", gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusPending), nil)
			},
		},
		{
			name:      "manager of the store reads from cache",
			requester: managerA,
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), "booking:get:booking-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.BookingResponse)
						res.FromModel(bookingIn(model.StatusPending))

						return nil
					})
			},
		},
		{
			name:      "cached booking of another store",
			requester: managerB,
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.BookingResponse)
						res.FromModel(bookingIn(model.StatusPending))

						return nil
					})
			},
			wantErr: service.ErrNotAuthorized,
		},
		{
			name:      "another customer",
			requester: otherCustomer,
			setupMock: func() {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusPending), nil)
			},
			wantErr: service.ErrNotAuthorized,
		},
		{
			name:      "missing booking",
			requester: admin,
			setupMock: func() {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Get(context.Background(), "booking-1", tt.requester)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "booking-1", res.ID)
		})
	}
}

func TestBookingService_ListUserBookings(t *testing.T) {
	f := newFixture(t)
	f.expectSideEffects()

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, "bookings.booking_date DESC, bookings.start_minute", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "bookings.user_id")
			assert.Contains(t, args, "user_id")

			return []model.Booking{bookingIn(model.StatusPending)}, nil
		})

	res, err := f.svc.ListUserBookings(context.Background(), customer.ID, gDto.QueryParams{Page: 1, Limit: 10, SortBy: "total_price"})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Bookings, 1)
}

func TestBookingService_ListStoreBookings(t *testing.T) {
	f := newFixture(t)
	f.expectSideEffects()

	t.Run("manager of another store", func(t *testing.T) {
		_, err := f.svc.ListStoreBookings(context.Background(), "store-a", managerB, gDto.QueryParams{})
		assert.ErrorIs(t, err, service.ErrNotAuthorized)
	})

	t.Run("customer", func(t *testing.T) {
		_, err := f.svc.ListStoreBookings(context.Background(), "store-a", customer, gDto.QueryParams{})
		assert.ErrorIs(t, err, service.ErrNotAuthorized)
	})

	t.Run("manager of the store", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.ListStoreBookings(context.Background(), "store-a", managerA, gDto.QueryParams{Page: 1, Limit: 10})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Empty(t, res.Bookings)
		assert.Equal(t, 1, res.TotalPage)
	})
}
