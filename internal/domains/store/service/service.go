package service

import (
	"context"
	"fmt"
	"mallbook/config"
	"mallbook/infras/otel"
	"mallbook/infras/s3"
	"mallbook/internal/domains/store/model"
	"mallbook/internal/domains/store/model/dto"
	"mallbook/internal/domains/store/repository"
	userModel "mallbook/internal/domains/user/model"
	userRepo "mallbook/internal/domains/user/repository"
	"mallbook/shared"
	"mallbook/shared/cache"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/failure"
	gRepo "mallbook/shared/repository"
	"mime/multipart"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStore    = "store:get"
	cacheGetAllStore = "store:gets"
	cacheCountStore  = "store:count"

	// cacheRequester mirrors the user service prefix; a manager change must drop resolved requesters.
	cacheRequester = "user:requester"
)

var sortableFields = []string{model.FieldName, model.FieldCategory, model.FieldFloor}

type Store interface {
	Create(ctx context.Context, req dto.CreateStoreRequest, requester userModel.Requester) (dto.StoreResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStoresResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StoreResponse, error)
	Update(ctx context.Context, req dto.UpdateStoreRequest, id string, requester userModel.Requester) error
	Delete(ctx context.Context, id string, requester userModel.Requester) error
}

type serviceImpl struct {
	repo     repository.Store
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Store, userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Store {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStoreRequest, requester userModel.Requester) (res dto.StoreResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// a store manager can only open a store for themselves
	if requester.Role == constant.RoleStoreManager {
		req.ManagerID = &requester.ID
	}

	if req.ManagerID != nil && requester.Role == constant.RoleAdmin {
		if err = s.checkManager(ctx, *req.ManagerID); err != nil {
			return res, err
		}
	}

	var imageURL *string

	if req.Image != nil && req.ImageFile != nil {
		url, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return res, err
		}

		imageURL = &url
	}

	store := req.ToModel(requester.ID, imageURL)

	if err = s.repo.Insert(ctx, store); err != nil {
		log.Error().Err(err).Msg("failed to create store")

		return res, fmt.Errorf("failed to create store: %w", err)
	}

	res.FromModel(store)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStore)
		shared.InvalidateCaches(c, s.cache, cacheCountStore)
		shared.InvalidateCaches(c, s.cache, cacheRequester)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStoresResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Sanitize(model.TableName, sortableFields...)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStore, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stores")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stores")

		return res, fmt.Errorf("failed to count stores: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stores")

		return res, fmt.Errorf("failed to get stores: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stores to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStore, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for store count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stores")

		return total, fmt.Errorf("failed to count stores: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save store count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StoreResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetStore, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for store")

		return res, nil
	}

	store, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(store)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save store to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStoreRequest, id string, requester userModel.Requester) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	store, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = authorize(store, requester); err != nil {
		return err
	}

	if req.ManagerID != nil {
		if requester.Role != constant.RoleAdmin {
			return failure.Forbidden("only an admin can reassign the store manager")
		}

		if err = s.checkManager(ctx, *req.ManagerID); err != nil {
			return err
		}
	}

	if req.Image != nil && req.ImageFile != nil {
		url, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return err
		}

		req.ImageURL = &url
	}

	updatedFields := shared.TransformFields(req, requester.ID)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update store")

		return fmt.Errorf("failed to update store: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStore, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete store cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStore)
		shared.InvalidateCaches(c, s.cache, cacheCountStore)

		if req.ManagerID != nil {
			shared.InvalidateCaches(c, s.cache, cacheRequester)
		}

		if req.ImageURL != nil && store.Image != nil {
			s.deleteImage(c, *store.Image)
		}
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string, requester userModel.Requester) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	store, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = authorize(store, requester); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("store still has services or bookings")
		}

		log.Error().Err(err).Msg("failed to delete store")

		return fmt.Errorf("failed to delete store: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStore, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete store cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStore)
		shared.InvalidateCaches(c, s.cache, cacheCountStore)
		shared.InvalidateCaches(c, s.cache, cacheRequester)

		if store.Image != nil {
			s.deleteImage(c, *store.Image)
		}
	}()

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Store, error) {
	store, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get store")

		return store, fmt.Errorf("failed to get store: %w", err)
	}

	if store.ID == constant.Empty {
		return store, failure.NotFound("store not found")
	}

	return store, nil
}

func (s *serviceImpl) checkManager(ctx context.Context, managerID string) error {
	manager, err := s.userRepo.Get(ctx, shared.FilterByID(managerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get store manager")

		return fmt.Errorf("failed to get store manager: %w", err)
	}

	if manager.ID == constant.Empty || manager.Role != constant.RoleStoreManager {
		return failure.BadRequestFromString("manager_id must reference a store manager")
	}

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	url, err := s.s3.PutImage(ctx, model.EntityName, file, header)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload store image")

		return constant.Empty, fmt.Errorf("failed to upload store image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, imageURL string) {
	if err := s.s3.RemoveByURL(ctx, imageURL); err != nil {
		log.Error().Err(err).Str("url", imageURL).Msg("failed to delete store image")
	}
}

// authorize lets admins through and store managers only for their own store.
func authorize(store model.Store, requester userModel.Requester) error {
	switch requester.Role {
	case constant.RoleAdmin:
		return nil
	case constant.RoleStoreManager:
		if store.ManagedBy(requester.ID) {
			return nil
		}
	}

	return failure.Forbidden("not authorized to manage this store")
}
