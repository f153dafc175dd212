//go:build wireinject
// +build wireinject

package di

import (
	"stayhub/config"
	"stayhub/infras/cron"
	"stayhub/infras/jwt"
	"stayhub/infras/kafka"
	"stayhub/infras/notifier"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/infras/queue"
	"stayhub/infras/redis"
	"stayhub/internal/jobs"
	"stayhub/shared/cache"
	"stayhub/transport/http"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/router"

	availRepository "stayhub/internal/domains/availability/repository"
	availService "stayhub/internal/domains/availability/service"
	bookingRepository "stayhub/internal/domains/booking/repository"
	bookingService "stayhub/internal/domains/booking/service"
	paymentRepository "stayhub/internal/domains/payment/repository"
	paymentService "stayhub/internal/domains/payment/service"
	propertyRepository "stayhub/internal/domains/property/repository"
	bookingHandler "stayhub/internal/handlers/booking"
	jobsHandler "stayhub/internal/handlers/jobs"
	paymentHandler "stayhub/internal/handlers/payment"

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
	cron.New,
	queue.NewDispatcher,
	queue.NewWorker,
	notifier.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var propertyDomain = wire.NewSet(
	propertyRepository.NewProperty,
	propertyRepository.NewRoom,
)

var availabilityDomain = wire.NewSet(
	availRepository.NewRoomBlock,
	availRepository.NewPriceAdjustment,
	availService.New,
	provideOverlapChecker,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewPaymentProof,
	bookingService.New,
	bookingService.NewMaintenance,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.NewReconciler,
)

var maintenance = wire.NewSet(
	jobs.New,
)

var domains = wire.NewSet(
	propertyDomain,
	availabilityDomain,
	bookingDomain,
	paymentDomain,
	maintenance,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	paymentHandler.New,
	jobsHandler.New,
	router.New,
)

func provideOverlapChecker(repo bookingRepository.Booking) availService.OverlapChecker {
	return repo
}

func InitializeService() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}
