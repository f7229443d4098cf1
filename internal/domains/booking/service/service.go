package service

import (
	"context"
	"errors"
	"fmt"
	"mallbook/config"
	"mallbook/infras/otel"
	"mallbook/internal/domains/booking/event"
	"mallbook/internal/domains/booking/model"
	"mallbook/internal/domains/booking/model/dto"
	"mallbook/internal/domains/booking/repository"
	catalogModel "mallbook/internal/domains/catalog/model"
	catalogRepo "mallbook/internal/domains/catalog/repository"
	userModel "mallbook/internal/domains/user/model"
	"mallbook/shared"
	"mallbook/shared/cache"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	defaultCancelReason = "Cancelled by user"

	// newestFirst is completed by the DESC direction on start_minute.
	newestFirst = model.TableName + "." + model.FieldBookingDate + " " + gDto.SortDirDesc + ", " +
		model.TableName + "." + model.FieldStartMinute
)

var sortableFields = []string{model.FieldBookingDate, model.FieldStartMinute, model.FieldStatus, model.FieldTotalPrice}

type Booking interface {
	Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, requester userModel.Requester, reason string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, requester userModel.Requester, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	ListUserBookings(ctx context.Context, userID string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	ListStoreBookings(ctx context.Context, storeID string, requester userModel.Requester, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string, requester userModel.Requester) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo        repository.Booking
	catalogRepo catalogRepo.Service
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	publisher   event.Publisher
}

func New(repo repository.Booking, catalogRepo catalogRepo.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
	publisher event.Publisher,
) Booking {
	return &serviceImpl{
		repo:        repo,
		catalogRepo: catalogRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		publisher:   publisher,
	}
}

// Create admits a reservation when the service is bookable at the requested date and time and the
// slot does not overlap an active booking. Nothing is written on rejection.
func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, err := s.catalogRepo.GetBookable(ctx, req.ServiceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty || !service.IsActive {
		return res, ErrServiceUnavailable
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, errInvalidDateOrTimeInput
	}

	if date.Before(timezone.Today()) {
		return res, ErrPastDate
	}

	window := service.Availability.Day(date.Weekday())
	if !window.IsOpen {
		return res, ErrClosedOnDay
	}

	start, err := catalogModel.ParseClock(req.Time)
	if err != nil {
		return res, errInvalidDateOrTimeInput
	}

	if !window.Contains(start) {
		return res, ErrOutsideOperatingHours
	}

	if req.NumberOfPeople < 1 || req.NumberOfPeople > service.Capacity {
		return res, ErrCapacityExceeded
	}

	booking := req.ToModel(userID, date, start, service)

	err = s.repo.InsertExclusive(ctx, booking, func(existing []model.Booking) error {
		for _, other := range existing {
			if other.Overlaps(booking.StartMinute, booking.DurationMinutes) {
				log.Info().
					Str("serviceID", booking.ServiceID).
					Str("conflictWith", other.ID).
					Msg("booking slot conflict")

				return ErrSlotConflict
			}
		}

		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrSlotConflict), errors.Is(err, repository.ErrSlotConflict):
		return res, ErrSlotConflict
	default:
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking = s.resolve(ctx, booking)
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, booking.ID)

		if err := s.publisher.Created(c, booking); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking created event")
		}
	}()

	return res, nil
}

// Cancel moves a pending or confirmed booking to cancelled on behalf of its owner, the manager of
// its store or an admin.
func (s *serviceImpl) Cancel(ctx context.Context, id string, requester userModel.Requester, reason string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !canAccess(booking, requester) {
		return res, ErrNotAuthorized
	}

	switch booking.Status {
	case model.StatusCancelled:
		return res, ErrAlreadyCancelled
	case model.StatusCompleted:
		return res, ErrCannotCancelCompleted
	}

	if reason == constant.Empty {
		reason = s.defaultCancelReason()
	}

	now := timezone.Now()
	cancelledBy := model.CancelledByRole(requester.Role)

	fields := map[string]any{
		model.FieldStatus:             model.StatusCancelled.String(),
		model.FieldCancelledBy:        cancelledBy,
		model.FieldCancellationReason: reason,
		model.FieldCancelledAt:        now,
		constant.FieldModifiedAt:      now,
		constant.FieldModifiedBy:      requester.ID,
	}

	previous := booking.Status
	if err = s.updateStatus(ctx, booking, fields); err != nil {
		return res, err
	}

	booking.Status = model.StatusCancelled
	booking.CancelledBy = &cancelledBy
	booking.CancellationReason = &reason
	booking.CancelledAt = &now
	booking.ModifiedAt = now
	booking.ModifiedBy = requester.ID

	res.FromModel(booking)
	s.afterStatusChange(ctx, booking, previous, requester.ID)

	return res, nil
}

// UpdateStatus moves a booking forward along its lifecycle. Only the manager of the booking's store
// or an admin may do so.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, requester userModel.Requester, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !canManage(booking, requester) {
		return res, ErrNotAuthorized
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil || !booking.Status.CanTransitionTo(status) {
		return res, ErrIllegalTransition
	}

	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        status.String(),
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: requester.ID,
	}

	if req.Notes != nil {
		fields[model.FieldNotes] = *req.Notes
		booking.Notes = req.Notes
	}

	if status == model.StatusCancelled {
		cancelledBy := model.CancelledByRole(requester.Role)
		fields[model.FieldCancelledBy] = cancelledBy
		fields[model.FieldCancelledAt] = now
		booking.CancelledBy = &cancelledBy
		booking.CancelledAt = &now
	}

	previous := booking.Status
	if err = s.updateStatus(ctx, booking, fields); err != nil {
		return res, err
	}

	booking.Status = status
	booking.ModifiedAt = now
	booking.ModifiedBy = requester.ID

	res.FromModel(booking)
	s.afterStatusChange(ctx, booking, previous, requester.ID)

	return res, nil
}

func (s *serviceImpl) ListUserBookings(ctx context.Context, userID string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUserBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = newestFirst
	params.SortDir = gDto.SortDirDesc

	return s.list(ctx, params, shared.FilterByID(userID, model.FieldUserID, model.TableName))
}

func (s *serviceImpl) ListStoreBookings(ctx context.Context, storeID string, requester userModel.Requester, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListStoreBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !canManage(model.Booking{StoreID: storeID}, requester) {
		return res, ErrNotAuthorized
	}

	params.SortBy = newestFirst
	params.SortDir = gDto.SortDirDesc

	return s.list(ctx, params, shared.FilterByID(storeID, model.FieldStoreID, model.TableName))
}

func (s *serviceImpl) Get(ctx context.Context, id string, requester userModel.Requester) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		if !canAccess(model.Booking{UserID: res.UserID, StoreID: res.StoreID}, requester) {
			return dto.BookingResponse{}, ErrNotAuthorized
		}

		return res, nil
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	if !canAccess(booking, requester) {
		return dto.BookingResponse{}, ErrNotAuthorized
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sanitize(model.TableName, sortableFields...)

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return total, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, ErrNotFound
	}

	return booking, nil
}

// resolve re-reads the stored booking with its joined names, falling back to the given snapshot.
func (s *serviceImpl) resolve(ctx context.Context, fallback model.Booking) model.Booking {
	booking, err := s.repo.Get(ctx, shared.FilterByID(fallback.ID, model.FieldID, model.TableName))
	if err != nil || booking.ID == constant.Empty {
		log.Warn().Err(err).Str("bookingID", fallback.ID).Msg("failed to resolve booking, returning snapshot")

		return fallback
	}

	return booking
}

func (s *serviceImpl) updateStatus(ctx context.Context, booking model.Booking, fields map[string]any) error {
	err := s.repo.UpdateStatus(ctx, booking.ID, booking.Status, fields)
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrStatusChanged) {
		return ErrIllegalTransition
	}

	log.Error().Err(err).Msg("failed to update booking status")

	return fmt.Errorf("failed to update booking status: %w", err)
}

func (s *serviceImpl) afterStatusChange(ctx context.Context, booking model.Booking, previous model.Status, changedBy string) {
	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, booking.ID)

		if err := s.publisher.StatusChanged(c, booking, previous, changedBy); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking status changed event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func (s *serviceImpl) defaultCancelReason() string {
	if s.cfg.Booking.DefaultCancelReason != constant.Empty {
		return s.cfg.Booking.DefaultCancelReason
	}

	return defaultCancelReason
}

// canManage holds for admins and the manager of the booking's store.
func canManage(booking model.Booking, requester userModel.Requester) bool {
	switch requester.Role {
	case constant.RoleAdmin:
		return true
	case constant.RoleStoreManager:
		return requester.StoreID != constant.Empty && requester.StoreID == booking.StoreID
	default:
		return false
	}
}

// canAccess adds the booking owner to canManage.
func canAccess(booking model.Booking, requester userModel.Requester) bool {
	return booking.OwnedBy(requester.ID) || canManage(booking, requester)
}
