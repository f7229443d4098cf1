package catalog

import (
	"mallbook/infras/otel"
	"mallbook/internal/domains/catalog/model"
	"mallbook/internal/domains/catalog/model/dto"
	"mallbook/internal/domains/catalog/service"
	"mallbook/internal/handlers/requester"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/validator"
	"mallbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  service.Service
	resolver requester.Resolver
	otel     otel.Otel
}

func New(service service.Service, resolver requester.Resolver, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		resolver: resolver,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
		routerGroup.Post("/{id}/image", handler.UploadImage)
	})
}

// CreateService adds a bookable service to a store.
// @Summary Create a new service
// @Description Missing availability falls back to the default weekly schedule.
// @Tags Service
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} dto.ServiceResponse "Service created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	service, err := handler.service.Create(ctx, req, actor)
	if err != nil {
		response.Fail(w, scope, err, "failed to create service")

		return
	}

	scope.AddEvent("Service created successfully by user " + actor.ID)

	response.WithJSON(w, http.StatusCreated, service)
}

// GetServices lists the active services.
// @Summary Get all services
// @Description Retrieve active services, optionally narrowed to a store or category.
// @Tags Service
// @Produce json
// @Param store_id query string false "Filter by store ID"
// @Param category query string false "Filter by category"
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetServicesResponse "List of services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	for _, field := range []string{model.FieldStoreID, model.FieldCategory} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	services, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get services")

		return
	}

	scope.AddEvent("Services retrieved successfully")

	response.WithJSON(w, http.StatusOK, services)
}

// GetCategories returns the service categories.
// @Summary Get service categories
// @Tags Service
// @Produce json
// @Success 200 {array} string "Categories"
// @Router /v1/services/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.Categories())
}

// GetServiceByID retrieves a service by its ID.
// @Summary Get a service by ID
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse "Service details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	service, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get service by ID")

		return
	}

	scope.AddEvent("Service retrieved successfully")

	response.WithJSON(w, http.StatusOK, service)
}

// UpdateService updates an existing service.
// @Summary Update a service by ID
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Message "Service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	if err := handler.service.Update(ctx, req, id, actor); err != nil {
		response.Fail(w, scope, err, "failed to update service")

		return
	}

	scope.AddEvent("Service updated successfully by user " + actor.ID)

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService deletes a service by its ID.
// @Summary Delete a service by ID
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	if err := handler.service.Delete(ctx, id, actor); err != nil {
		response.Fail(w, scope, err, "failed to delete service")

		return
	}

	scope.AddEvent("Service deleted successfully by user " + actor.ID)

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}

// UploadImage replaces the image of a service.
// @Summary Upload a service image
// @Tags Service
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Service ID"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} map[string]string "Image URL"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		response.Fail(w, scope, err, "failed to parse multipart form")

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		response.Fail(w, scope, err, "failed to get file from form")

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(w, scope, err, "failed to validate request")

		return
	}

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	url, err := handler.service.UploadImage(ctx, req, id, actor)
	if err != nil {
		response.Fail(w, scope, err, "failed to upload service image")

		return
	}

	scope.AddEvent("Service image uploaded successfully by user " + actor.ID)

	response.WithJSON(w, http.StatusOK, map[string]string{model.FieldImage: url})
}
