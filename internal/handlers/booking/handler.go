package booking

import (
	"mallbook/infras/otel"
	"mallbook/internal/domains/booking/model"
	"mallbook/internal/domains/booking/model/dto"
	"mallbook/internal/domains/booking/service"
	"mallbook/internal/handlers/requester"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/validator"
	"mallbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  service.Booking
	resolver requester.Resolver
	otel     otel.Otel
}

func New(service service.Booking, resolver requester.Resolver, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		resolver: resolver,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Get("/store/{storeId}", handler.GetStoreBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/cancel", handler.CancelBooking)
		routerGroup.Put("/{id}/status", handler.UpdateBookingStatus)
	})
}

// CreateBooking reserves a slot of a service for the authenticated user.
// @Summary Create a new booking
// @Description Book a service on a date and start time. The total price is frozen at booking time.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to create booking")

		return
	}

	scope.AddEvent("Booking created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings lists every booking.
// @Summary Get all bookings
// @Description Admin listing with optional filtering and pagination.
// @Tags Booking
// @Produce json
// @Param status query string false "Filter by status (pending, confirmed, completed, cancelled)"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Param store_id query string false "Filter by store ID"
// @Param service_id query string false "Filter by service ID"
// @Param user_id query string false "Filter by user ID"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	fields := []string{model.FieldStatus, model.FieldBookingDate, model.FieldStoreID, model.FieldServiceID, model.FieldUserID}
	for _, field := range fields {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get bookings")

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings lists the bookings of the authenticated user, newest first.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookings, err := handler.service.ListUserBookings(ctx, userID, queryParams)
	if err != nil {
		response.Fail(w, scope, err, "failed to get user bookings")

		return
	}

	scope.AddEvent("User bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetStoreBookings lists the bookings of one store, newest first.
// @Summary Get store bookings
// @Tags Booking
// @Produce json
// @Param storeId path string true "Store ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/store/{storeId} [get]
// @Security BearerAuth
func (handler *Handler) GetStoreBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStoreBookings")
	defer scope.End()

	storeID := chi.URLParam(r, constant.RequestParamStoreID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	bookings, err := handler.service.ListStoreBookings(ctx, storeID, actor, queryParams)
	if err != nil {
		response.Fail(w, scope, err, "failed to get store bookings")

		return
	}

	scope.AddEvent("Store bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking visible to the caller.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	booking, err := handler.service.Get(ctx, id, actor)
	if err != nil {
		response.Fail(w, scope, err, "failed to get booking by ID")

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a pending or confirmed booking.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest false "Cancel Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	// the body is optional
	req := dto.CancelBookingRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			response.Fail(w, scope, err, "failed to validate request body")

			return
		}
	}

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	booking, err := handler.service.Cancel(ctx, id, actor, req.Reason)
	if err != nil {
		response.Fail(w, scope, err, "failed to cancel booking")

		return
	}

	scope.AddEvent("Booking cancelled successfully by user " + actor.ID)

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus moves a booking along its lifecycle.
// @Summary Update the status of a booking
// @Description pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} dto.BookingResponse "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, id, actor, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to update booking status")

		return
	}

	scope.AddEvent("Booking " + id + " moved to " + req.Status + " by user " + actor.ID)

	response.WithJSON(w, http.StatusOK, booking)
}
