//go:build wireinject
// +build wireinject

package di

import (
	"bookly/config"
	"bookly/infras/jwt"
	"bookly/infras/kafka"
	"bookly/infras/otel"
	"bookly/infras/postgres"
	"bookly/infras/redis"
	"bookly/permissions"
	"bookly/shared/cache"
	"bookly/transport/http"
	"bookly/transport/http/middleware"
	"bookly/transport/http/router"

	"github.com/google/wire"

	appointmentRepository "bookly/internal/domains/appointment/repository"
	appointmentService "bookly/internal/domains/appointment/service"
	authService "bookly/internal/domains/auth/service"
	brandRepository "bookly/internal/domains/brand/repository"
	brandService "bookly/internal/domains/brand/service"
	scheduleRepository "bookly/internal/domains/schedule/repository"
	scheduleService "bookly/internal/domains/schedule/service"
	userRepository "bookly/internal/domains/user/repository"
	userService "bookly/internal/domains/user/service"

	appointmentHandler "bookly/internal/handlers/appointment"
	authHandler "bookly/internal/handlers/auth"
	brandHandler "bookly/internal/handlers/brand"
	scheduleHandler "bookly/internal/handlers/schedule"
	userHandler "bookly/internal/handlers/user"
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
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var brandDomain = wire.NewSet(
	brandRepository.New,
	brandService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.NewWeeklyHours,
	scheduleRepository.NewDateException,
	scheduleRepository.NewBookingPolicy,
	scheduleService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	brandDomain,
	scheduleDomain,
	appointmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	brandHandler.New,
	scheduleHandler.New,
	appointmentHandler.New,
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
