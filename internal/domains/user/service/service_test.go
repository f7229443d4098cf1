package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mallbook/config"
	"mallbook/infras/otel/mocks"
	storeMocks "mallbook/internal/domains/store/mocks"
	storeModel "mallbook/internal/domains/store/model"
	userMocks "mallbook/internal/domains/user/mocks"
	"mallbook/internal/domains/user/model"
	"mallbook/internal/domains/user/model/dto"
	"mallbook/internal/domains/user/service"
	"mallbook/shared/cache"
	cacheMocks "mallbook/shared/cache/mocks"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/failure"
)

func TestUserService_ResolveRequester(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockStoreRepo := storeMocks.NewMockStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.RequesterCacheTTLSec = 300

	svc := service.New(mockRepo, mockStoreRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		userID    string
		role      string
		setupMock func()
		want      model.Requester
		wantCode  int
		wantErr   bool
	}{
		{
			name:      "customer needs no store lookup",
			userID:    "customer-1",
			role:      constant.RoleCustomer,
			setupMock: func() {},
			want:      model.Requester{ID: "customer-1", Role: constant.RoleCustomer},
		},
		{
			name:      "admin needs no store lookup",
			userID:    "admin-1",
			role:      constant.RoleAdmin,
			setupMock: func() {},
			want:      model.Requester{ID: "admin-1", Role: constant.RoleAdmin},
		},
		{
			name:   "store manager served from cache",
			userID: "manager-1",
			role:   constant.RoleStoreManager,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "user:requester:manager-1:store_manager", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						requester, _ := value.(*model.Requester)
						requester.StoreID = "store-1"

						return nil
					})
			},
			want: model.Requester{ID: "manager-1", Role: constant.RoleStoreManager, StoreID: "store-1"},
		},
		{
			name:   "store manager resolved through manager_id",
			userID: "manager-1",
			role:   constant.RoleStoreManager,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockStoreRepo.EXPECT().
					GetManagedBy(gomock.Any(), "manager-1").
					Return(storeModel.Store{ID: "store-1"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).
					Return(nil).
					AnyTimes()
			},
			want: model.Requester{ID: "manager-1", Role: constant.RoleStoreManager, StoreID: "store-1"},
		},
		{
			name:   "store manager without a store",
			userID: "manager-2",
			role:   constant.RoleStoreManager,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockStoreRepo.EXPECT().
					GetManagedBy(gomock.Any(), "manager-2").
					Return(storeModel.Store{}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			want: model.Requester{ID: "manager-2", Role: constant.RoleStoreManager},
		},
		{
			name:   "store lookup error",
			userID: "manager-3",
			role:   constant.RoleStoreManager,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockStoreRepo.EXPECT().
					GetManagedBy(gomock.Any(), "manager-3").
					Return(storeModel.Store{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name:      "missing user id",
			userID:    "",
			role:      constant.RoleCustomer,
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.ResolveRequester(context.Background(), tt.userID, tt.role)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockStoreRepo := storeMocks.NewMockStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockStoreRepo, &config.Config{}, mockCache, mockOtel)

	req := dto.CreateUserRequest{
		Email:    "manager@example.com",
		Password: "password123",
		Name:     "Store Manager",
		Role:     constant.RoleStoreManager,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					EmailTaken(gomock.Any(), "manager@example.com").
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, constant.RoleStoreManager, user.Role)
						assert.Equal(t, "admin-1", user.CreatedBy)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockRepo.EXPECT().
					EmailTaken(gomock.Any(), "manager@example.com").
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockStoreRepo := storeMocks.NewMockStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockStoreRepo, &config.Config{}, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "user not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "user still referenced",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to delete data (user): %w", &pq.Error{Code: constant.PqErrorCodeFkViolation}))
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "user-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, storeMocks.NewMockStore(ctrl), &config.Config{}, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantName  string
		wantCode  int
	}{
		{
			name: "served from cache",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "user:get:user-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.UserResponse).Name = "Cached"

						return nil
					})
			},
			wantName: "Cached",
		},
		{
			name: "loaded and cached",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "user-1", Name: "Dewi", Role: constant.RoleCustomer}, nil)
				mockCache.EXPECT().Save(gomock.Any(), "user:get:user-1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantName: "Dewi",
		},
		{
			name: "missing user",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.Get(context.Background(), "user-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, storeMocks.NewMockStore(ctrl), &config.Config{}, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func()
		wantCode  int
	}{
		{
			name:      "empty request",
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown user",
			req:  dto.UpdateUserRequest{Name: "Renamed"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "stamps the acting admin",
			req:  dto.UpdateUserRequest{Name: "Renamed"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Renamed", fields[model.FieldName])
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

						return nil
					})
				mockCache.EXPECT().Delete(gomock.Any(), "user:get:user-1").Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "repository failure",
			req:  dto.UpdateUserRequest{Name: "Renamed"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Update(ctx, tt.req, "user-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
