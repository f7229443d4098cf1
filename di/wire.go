//go:build wireinject
// +build wireinject

package di

import (
	"mallbook/config"
	"mallbook/infras/jwt"
	"mallbook/infras/kafka"
	"mallbook/infras/otel"
	"mallbook/infras/postgres"
	"mallbook/infras/redis"
	"mallbook/infras/s3"
	"mallbook/internal/handlers/requester"
	"mallbook/permissions"
	"mallbook/shared/cache"
	"mallbook/transport/http"
	"mallbook/transport/http/middleware"
	"mallbook/transport/http/router"

	"github.com/google/wire"

	authService "mallbook/internal/domains/auth/service"
	bookingEvent "mallbook/internal/domains/booking/event"
	bookingRepository "mallbook/internal/domains/booking/repository"
	bookingService "mallbook/internal/domains/booking/service"
	catalogRepository "mallbook/internal/domains/catalog/repository"
	catalogService "mallbook/internal/domains/catalog/service"
	storeRepository "mallbook/internal/domains/store/repository"
	storeService "mallbook/internal/domains/store/service"
	userRepository "mallbook/internal/domains/user/repository"
	userService "mallbook/internal/domains/user/service"
	authHandler "mallbook/internal/handlers/auth"
	bookingHandler "mallbook/internal/handlers/booking"
	catalogHandler "mallbook/internal/handlers/catalog"
	storeHandler "mallbook/internal/handlers/store"
	userHandler "mallbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	wire.Bind(new(requester.Resolver), new(userService.User)),
)

var storeDomain = wire.NewSet(
	storeRepository.New,
	storeService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	storeDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	storeHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeBookingListener() *bookingEvent.Listener {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		bookingEvent.NewListener,
	)

	return &bookingEvent.Listener{}
}
