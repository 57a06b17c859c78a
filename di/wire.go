//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	auditRepository "frontdesk/internal/domains/audit/repository"
	auditService "frontdesk/internal/domains/audit/service"
	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	organizationRepository "frontdesk/internal/domains/organization/repository"
	organizationService "frontdesk/internal/domains/organization/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"

	auditHandler "frontdesk/internal/handlers/audit"
	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	guestHandler "frontdesk/internal/handlers/guest"
	organizationHandler "frontdesk/internal/handlers/organization"
	roomHandler "frontdesk/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var organizationDomain = wire.NewSet(
	organizationRepository.New,
	organizationRepository.NewVoucher,
	organizationService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	guestDomain,
	organizationDomain,
	authDomain,
	auditDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	guestHandler.New,
	organizationHandler.New,
	authHandler.New,
	auditHandler.New,
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
