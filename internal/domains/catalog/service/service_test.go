package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mallbook/config"
	"mallbook/infras/otel/mocks"
	s3Mocks "mallbook/infras/s3/mocks"
	catalogMocks "mallbook/internal/domains/catalog/mocks"
	"mallbook/internal/domains/catalog/model"
	"mallbook/internal/domains/catalog/model/dto"
	"mallbook/internal/domains/catalog/service"
	storeMocks "mallbook/internal/domains/store/mocks"
	storeModel "mallbook/internal/domains/store/model"
	userModel "mallbook/internal/domains/user/model"
	"mallbook/shared/cache"
	cacheMocks "mallbook/shared/cache/mocks"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	"mallbook/shared/failure"
)

var (
	admin   = userModel.Requester{ID: "admin-1", Role: constant.RoleAdmin}
	manager = userModel.Requester{ID: "manager-1", Role: constant.RoleStoreManager, StoreID: "store-1"}
	other   = userModel.Requester{ID: "manager-2", Role: constant.RoleStoreManager, StoreID: "store-2"}
)

func TestCatalogService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockService(ctrl)
	mockStoreRepo := storeMocks.NewMockStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockStoreRepo, &config.Config{}, mockCache, mockOtel, mockS3)

	validReq := dto.CreateServiceRequest{
		StoreID:         "store-1",
		Name:            "Haircut",
		Description:     "Classic cut",
		Category:        "beauty",
		Price:           decimal.RequireFromString("25.00"),
		DurationMinutes: 30,
	}

	negative := validReq
	negative.Price = decimal.RequireFromString("-1")

	tests := []struct {
		name      string
		req       dto.CreateServiceRequest
		requester userModel.Requester
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name:      "manager creates a service with defaults",
			req:       validReq,
			requester: manager,
			setupMock: func() {
				mockStoreRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(storeModel.Store{ID: "store-1", Name: "Salon", IsActive: true}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s model.Service) error {
						assert.Equal(t, model.DefaultCapacity, s.Capacity)
						assert.Len(t, s.Availability, 7)
						assert.True(t, s.IsActive)

						return nil
					})

				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:      "negative price",
			req:       negative,
			requester: admin,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:      "manager of another store",
			req:       validReq,
			requester: other,
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
			wantErr:   true,
		},
		{
			name:      "inactive store",
			req:       validReq,
			requester: admin,
			setupMock: func() {
				mockStoreRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(storeModel.Store{ID: "store-1", IsActive: false}, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name:      "insert error",
			req:       validReq,
			requester: admin,
			setupMock: func() {
				mockStoreRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(storeModel.Store{ID: "store-1", IsActive: true}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req, tt.requester)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "25", res.Price.String())
			}
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockService(ctrl)
	mockStoreRepo := storeMocks.NewMockStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockStoreRepo, &config.Config{}, mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "service:get:service-1", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)

				mockRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(model.Service{ID: "service-1", StoreID: "store-1"}, nil)

				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)

				mockRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(model.Service{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "service-1")

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

func TestCatalogService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockService(ctrl)
	mockStoreRepo := storeMocks.NewMockStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockStoreRepo, &config.Config{}, mockCache, mockOtel, mockS3)

	free := decimal.Zero
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name      string
		req       dto.UpdateServiceRequest
		requester userModel.Requester
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name:      "price can be set to zero",
			req:       dto.UpdateServiceRequest{Price: &free},
			requester: manager,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(model.Service{ID: "service-1", StoreID: "store-1"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldPrice)

						return nil
					})

				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateServiceRequest{},
			requester: admin,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:      "negative price",
			req:       dto.UpdateServiceRequest{Price: &negative},
			requester: admin,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:      "manager of another store",
			req:       dto.UpdateServiceRequest{Name: "Beard trim"},
			requester: other,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(model.Service{ID: "service-1", StoreID: "store-1"}, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "service-1", tt.requester)

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

func TestCatalogService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockService(ctrl)
	mockStoreRepo := storeMocks.NewMockStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockStoreRepo, &config.Config{}, mockCache, mockOtel, mockS3)

	image := "https://cdn.example.com/service/a.png"

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "deletes service and image",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(model.Service{ID: "service-1", StoreID: "store-1", Image: &image}, nil)

				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockS3.EXPECT().RemoveByURL(gomock.Any(), image).Return(nil).AnyTimes()
			},
		},
		{
			name: "service has bookings",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					Return(model.Service{ID: "service-1", StoreID: "store-1"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to delete data (service): %w", &pq.Error{Code: constant.PqErrorCodeFkViolation}))
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "service-1", manager)

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
