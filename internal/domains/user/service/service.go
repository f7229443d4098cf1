package service

import (
	"context"
	"errors"
	"fmt"
	"mallbook/config"
	"mallbook/infras/otel"
	storeRepo "mallbook/internal/domains/store/repository"
	"mallbook/internal/domains/user/model"
	"mallbook/internal/domains/user/model/dto"
	"mallbook/internal/domains/user/repository"
	"mallbook/shared"
	"mallbook/shared/cache"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/failure"
	"mallbook/shared/password"
	gRepo "mallbook/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser       = "user:get"
	cacheGetAllUser    = "user:gets"
	cacheCountUser     = "user:count"
	cacheUserRequester = "user:requester"
)

var sortableFields = []string{model.FieldName, model.FieldEmail, model.FieldRole, model.FieldLastLogin}

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, id string) error
	Delete(ctx context.Context, id string) error
	ResolveRequester(ctx context.Context, userID, role string) (model.Requester, error)
}

type serviceImpl struct {
	repo      repository.User
	storeRepo storeRepo.Store
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.User, storeRepo storeRepo.Store, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:      repo,
		storeRepo: storeRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+op)
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// remember stores value in the background so a slow cache never delays the response.
func (s *serviceImpl) remember(ctx context.Context, key string, value any, ttl int) {
	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache user data")
		}
	}()
}

// forget drops the lists and counts, and when id is given, that user's entry
// and resolved requester.
func (s *serviceImpl) forget(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
		shared.InvalidateCaches(c, s.cache, cacheCountUser)

		if id == constant.Empty {
			return
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Warn().Err(err).Str("user_id", id).Msg("failed to drop cached user")
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheUserRequester, id))
	}()
}

func (s *serviceImpl) mustExist(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found")
	}

	return nil
}

// Create lets an admin add an account of any role.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.scope(ctx, "Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	taken, err := s.repo.EmailTaken(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}

	if taken {
		return failure.Conflict("email already registered")
	}

	hashed, err := password.Hash(req.Password)
	if errors.Is(err, password.ErrPasswordTooLong) {
		return failure.BadRequest(err)
	}

	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(actor, hashed)); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("email already registered")
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	s.forget(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.scope(ctx, "GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Sanitize(model.TableName, sortableFields...)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users, total, req.Limit)
	s.remember(ctx, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.scope(ctx, "Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountUser, req, filter)

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		return res, nil
	}

	if res, err = s.repo.Count(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	s.remember(ctx, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.scope(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		return res, nil
	}

	user, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user)
	s.remember(ctx, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// Update is the admin edit. Role and activation changes also drop the cached requester.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.scope(ctx, "Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateUserRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if err = s.mustExist(ctx, id); err != nil {
		return err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor), byID(id)); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	s.forget(ctx, id)

	return nil
}

// UpdateProfile is the self service edit of name and phone.
func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, id string) (err error) {
	ctx, scope := s.scope(ctx, "UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateProfileRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, id), byID(id)); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.forget(ctx, id)

	return nil
}

// Delete refuses to remove a user still referenced by bookings or a store.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.mustExist(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("user still owns bookings or manages a store")
		}

		log.Error().Err(err).Str("user_id", id).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.forget(ctx, id)

	return nil
}

// ResolveRequester builds the caller identity used by ownership checks. For a store manager the
// managed store is looked up through stores.manager_id; a manager without a store gets an empty
// StoreID and therefore manages nothing.
func (s *serviceImpl) ResolveRequester(ctx context.Context, userID, role string) (res model.Requester, err error) {
	ctx, scope := s.scope(ctx, "ResolveRequester")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == constant.Empty {
		return res, failure.Unauthorized("missing user identity")
	}

	res = model.Requester{ID: userID, Role: role}
	if role != constant.RoleStoreManager {
		return res, nil
	}

	cacheKey := shared.BuildCacheKey(cacheUserRequester, userID, role)

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		return res, nil
	}

	store, err := s.storeRepo.GetManagedBy(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get managed store")

		return res, fmt.Errorf("failed to get managed store: %w", err)
	}

	res.StoreID = store.ID
	s.remember(ctx, cacheKey, res, s.cfg.Booking.RequesterCacheTTLSec)

	return res, nil
}
