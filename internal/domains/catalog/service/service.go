package service

import (
	"context"
	"fmt"
	"mallbook/config"
	"mallbook/infras/otel"
	"mallbook/infras/s3"
	"mallbook/internal/domains/catalog/model"
	"mallbook/internal/domains/catalog/model/dto"
	"mallbook/internal/domains/catalog/repository"
	storeRepo "mallbook/internal/domains/store/repository"
	userModel "mallbook/internal/domains/user/model"
	"mallbook/shared"
	"mallbook/shared/cache"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/failure"
	gRepo "mallbook/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cacheCountService  = "service:count"
)

var sortableFields = []string{model.FieldName, model.FieldCategory, model.FieldPrice, model.FieldDurationMinutes}

type Service interface {
	Create(ctx context.Context, req dto.CreateServiceRequest, requester userModel.Requester) (dto.ServiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id string, requester userModel.Requester) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id string, requester userModel.Requester) (string, error)
	Delete(ctx context.Context, id string, requester userModel.Requester) error
	Categories() []string
}

type serviceImpl struct {
	repo      repository.Service
	storeRepo storeRepo.Store
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func New(repo repository.Service, storeRepo storeRepo.Store, cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
	s3 s3.S3,
) Service {
	return &serviceImpl{
		repo:      repo,
		storeRepo: storeRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest, requester userModel.Requester) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Price.IsNegative() {
		return res, failure.BadRequestFromString("price must not be negative")
	}

	if err = authorize(req.StoreID, requester); err != nil {
		return res, err
	}

	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get store")

		return res, fmt.Errorf("failed to get store: %w", err)
	}

	if store.ID == constant.Empty || !store.IsActive {
		return res, failure.BadRequestFromString("store not found or inactive")
	}

	service := req.ToModel(requester.ID)
	service.StoreName = &store.Name

	if err = s.repo.Insert(ctx, service); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Sanitize(model.TableName, sortableFields...)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return total, fmt.Errorf("failed to count services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	service, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id string, requester userModel.Requester) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if req.Price != nil && req.Price.IsNegative() {
		return failure.BadRequestFromString("price must not be negative")
	}

	service, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = authorize(service.StoreID, requester); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, requester.ID)
	if req.Price != nil {
		updatedFields[model.FieldPrice] = req.Price.Round(2)
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id string, requester userModel.Requester) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, err := s.get(ctx, id)
	if err != nil {
		return url, err
	}

	if err = authorize(service.StoreID, requester); err != nil {
		return url, err
	}

	url, err = s.s3.PutImage(ctx, model.EntityName, req.ImageFile, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload service image")

		return url, fmt.Errorf("failed to upload service image: %w", err)
	}

	err = s.repo.Update(ctx, dto.ImageFields(url, requester.ID), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update service image")

		return constant.Empty, fmt.Errorf("failed to update service image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if service.Image != nil {
			s.deleteImage(c, *service.Image)
		}
	}()

	return url, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string, requester userModel.Requester) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = authorize(service.StoreID, requester); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("service still has bookings, deactivate it instead")
		}

		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if service.Image != nil {
			s.deleteImage(c, *service.Image)
		}
	}()

	return nil
}

func (s *serviceImpl) Categories() []string {
	return model.Categories
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Service, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return service, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return service, failure.NotFound("service not found")
	}

	return service, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetService, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete service cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllService)
	shared.InvalidateCaches(ctx, s.cache, cacheCountService)
}

func (s *serviceImpl) deleteImage(ctx context.Context, imageURL string) {
	if err := s.s3.RemoveByURL(ctx, imageURL); err != nil {
		log.Error().Err(err).Str("url", imageURL).Msg("failed to delete service image")
	}
}

// authorize lets admins through and store managers only for the store they manage.
func authorize(storeID string, requester userModel.Requester) error {
	switch requester.Role {
	case constant.RoleAdmin:
		return nil
	case constant.RoleStoreManager:
		if requester.StoreID != constant.Empty && requester.StoreID == storeID {
			return nil
		}
	}

	return failure.Forbidden("not authorized to manage services of this store")
}
