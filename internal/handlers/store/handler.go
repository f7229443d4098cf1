package store

import (
	"mallbook/infras/otel"
	"mallbook/internal/domains/store/model"
	"mallbook/internal/domains/store/model/dto"
	"mallbook/internal/domains/store/service"
	"mallbook/internal/handlers/requester"
	"mallbook/shared"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/validator"
	"mallbook/transport/http/response"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  service.Store
	resolver requester.Resolver
	otel     otel.Otel
}

func New(service service.Store, resolver requester.Resolver, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		resolver: resolver,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stores", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStore)
		routerGroup.Get("/", handler.GetStores)
		routerGroup.Get("/{id}", handler.GetStoreByID)
		routerGroup.Patch("/{id}", handler.UpdateStore)
		routerGroup.Delete("/{id}", handler.DeleteStore)
	})
}

func optionalFormValue(r *http.Request, key string) *string {
	value := r.FormValue(key)
	if value == "" {
		return nil
	}

	return &value
}

func formImage(r *http.Request) (*multipart.FileHeader, multipart.File) {
	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err != nil {
		return nil, nil
	}

	return fileHeader, file
}

// CreateStore registers a new store in the mall directory.
// @Summary Create a new store
// @Description Create a store from a multipart form, the optional image is uploaded to S3.
// @Tags Store
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Store name"
// @Param description formData string false "Description"
// @Param category formData string true "Category"
// @Param floor formData string true "Floor"
// @Param unit formData string true "Unit"
// @Param phone formData string false "Phone"
// @Param email formData string false "Email"
// @Param manager_id formData string false "Manager user ID"
// @Param image formData file false "Store image"
// @Success 201 {object} dto.StoreResponse "Store created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores [post]
// @Security BearerAuth
func (handler *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStore")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		response.Fail(w, scope, err, "failed to parse multipart form")

		return
	}

	req := dto.CreateStoreRequest{
		Name:        r.FormValue(model.FieldName),
		Description: r.FormValue(model.FieldDescription),
		Category:    r.FormValue(model.FieldCategory),
		Floor:       r.FormValue(model.FieldFloor),
		Unit:        r.FormValue(model.FieldUnit),
		Phone:       optionalFormValue(r, model.FieldPhone),
		Email:       optionalFormValue(r, model.FieldEmail),
		ManagerID:   optionalFormValue(r, model.FieldManagerID),
	}

	req.Image, req.ImageFile = formImage(r)
	if req.ImageFile != nil {
		defer req.ImageFile.Close()
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

	store, err := handler.service.Create(ctx, req, actor)
	if err != nil {
		response.Fail(w, scope, err, "failed to create store")

		return
	}

	scope.AddEvent("Store created successfully by user " + actor.ID)

	response.WithJSON(w, http.StatusCreated, store)
}

// GetStores lists the stores of the mall.
// @Summary Get all stores
// @Description Retrieve stores with optional filtering and pagination.
// @Tags Store
// @Produce json
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Param floor query string false "Filter by floor"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} dto.GetStoresResponse "List of stores"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores [get]
func (handler *Handler) GetStores(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStores")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	for _, field := range []string{model.FieldCategory, model.FieldFloor} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if isActive := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); isActive != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *isActive,
			Table:    model.TableName,
		})
	}

	stores, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get stores")

		return
	}

	scope.AddEvent("Stores retrieved successfully")

	response.WithJSON(w, http.StatusOK, stores)
}

// GetStoreByID retrieves a store by its ID.
// @Summary Get a store by ID
// @Tags Store
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} dto.StoreResponse "Store details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores/{id} [get]
func (handler *Handler) GetStoreByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStoreByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	store, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get store by ID")

		return
	}

	scope.AddEvent("Store retrieved successfully")

	response.WithJSON(w, http.StatusOK, store)
}

// UpdateStore updates an existing store.
// @Summary Update a store by ID
// @Description Only the sent fields are updated. A new image replaces the old one on S3.
// @Tags Store
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Store ID"
// @Param name formData string false "Store name"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Param floor formData string false "Floor"
// @Param unit formData string false "Unit"
// @Param phone formData string false "Phone"
// @Param email formData string false "Email"
// @Param manager_id formData string false "Manager user ID"
// @Param is_active formData bool false "Active flag"
// @Param image formData file false "Store image"
// @Success 200 {object} response.Message "Store updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStore")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		response.Fail(w, scope, err, "failed to parse multipart form")

		return
	}

	req := dto.UpdateStoreRequest{
		Name:        r.FormValue(model.FieldName),
		Description: r.FormValue(model.FieldDescription),
		Category:    r.FormValue(model.FieldCategory),
		Floor:       r.FormValue(model.FieldFloor),
		Unit:        r.FormValue(model.FieldUnit),
		Phone:       optionalFormValue(r, model.FieldPhone),
		Email:       optionalFormValue(r, model.FieldEmail),
		ManagerID:   optionalFormValue(r, model.FieldManagerID),
		IsActive:    shared.ConvertStringToBool(r.FormValue(model.FieldIsActive)),
	}

	req.Image, req.ImageFile = formImage(r)
	if req.ImageFile != nil {
		defer req.ImageFile.Close()
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

	if err := handler.service.Update(ctx, req, id, actor); err != nil {
		response.Fail(w, scope, err, "failed to update store")

		return
	}

	scope.AddEvent("Store updated successfully by user " + actor.ID)

	response.WithMessage(w, http.StatusOK, "Store updated successfully")
}

// DeleteStore deletes a store by its ID.
// @Summary Delete a store by ID
// @Tags Store
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} response.Message "Store deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStore")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	actor, err := requester.FromContext(ctx, handler.resolver)
	if err != nil {
		response.Fail(w, scope, err, "failed to resolve requester")

		return
	}

	if err := handler.service.Delete(ctx, id, actor); err != nil {
		response.Fail(w, scope, err, "failed to delete store")

		return
	}

	scope.AddEvent("Store deleted successfully by user " + actor.ID)

	response.WithMessage(w, http.StatusOK, "Store deleted successfully")
}
