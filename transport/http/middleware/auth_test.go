package middleware_test

import (
	"errors"
	"mallbook/config"
	"mallbook/infras/jwt"
	jwtMocks "mallbook/infras/jwt/mocks"
	otelMocks "mallbook/infras/otel/mocks"
	"mallbook/permissions"
	"mallbook/shared/constant"
	"mallbook/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/v1/stores", Method: http.MethodGet, Skip: true},
		{Path: "/v1/bookings/mine", Method: http.MethodGet},
		{Path: "/v1/bookings/store/{storeId}", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleStoreManager}},
	},
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
	role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(userID + "|" + role))
}

func newAuthRouter(jwtService jwt.JWT) http.Handler {
	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), testPermissions, cfg)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(authRole.APIKey)
		r.Use(authRole.Auth)
		r.Use(authRole.RBAC)

		r.Route("/v1", func(v chi.Router) {
			v.Get("/stores", echoUser)
			v.Get("/bookings/mine", echoUser)
			v.Get("/bookings/store/{storeId}", echoUser)
		})
	})

	return router
}

func TestAuthRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)

	claims := func(role string) *jwt.Claims {
		return &jwt.Claims{UserID: "user-1", Email: "user@mall.test", Role: role, TokenID: "token-1"}
	}

	tests := []struct {
		name       string
		path       string
		header     string
		apiKey     string
		setupMock  func()
		wantStatus int
		wantBody   string
	}{
		{
			name:       "public route skips the token check",
			path:       "/v1/stores",
			setupMock:  func() {},
			wantStatus: http.StatusOK,
			wantBody:   "|",
		},
		{
			name:       "missing header",
			path:       "/v1/bookings/mine",
			setupMock:  func() {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Missing authorization header",
		},
		{
			name:       "header without bearer prefix",
			path:       "/v1/bookings/mine",
			header:     "Token abc",
			setupMock:  func() {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization header format",
		},
		{
			name:   "expired token",
			path:   "/v1/bookings/mine",
			header: "Bearer expired",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name:   "claims without role",
			path:   "/v1/bookings/mine",
			header: "Bearer partial",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "partial", jwt.AccessToken).Return(claims(""), nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token claims",
		},
		{
			name:   "any authenticated role",
			path:   "/v1/bookings/mine",
			header: "Bearer good",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims(constant.RoleCustomer), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1|customer",
		},
		{
			name:   "role not allowed",
			path:   "/v1/bookings/store/store-1",
			header: "Bearer good",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims(constant.RoleCustomer), nil)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "You don't have the required permissions",
		},
		{
			name:   "role allowed",
			path:   "/v1/bookings/store/store-1",
			header: "Bearer good",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims(constant.RoleStoreManager), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1|store_manager",
		},
		{
			name:   "unexpected validation error",
			path:   "/v1/bookings/mine",
			header: "Bearer weird",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "weird", jwt.AccessToken).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token validation failed",
		},
		{
			name:       "internal caller with the api key",
			path:       "/v1/bookings/store/store-1",
			apiKey:     "internal-key",
			setupMock:  func() {},
			wantStatus: http.StatusOK,
			wantBody:   "|",
		},
		{
			name:       "wrong api key",
			path:       "/v1/bookings/mine",
			apiKey:     "guess",
			setupMock:  func() {},
			wantStatus: http.StatusForbidden,
			wantBody:   "You don't have the required permissions",
		},
	}

	router := newAuthRouter(mockJWT)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
