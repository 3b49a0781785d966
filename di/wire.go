//go:build wireinject
// +build wireinject

package di

import (
	"courtside/config"
	"courtside/infras/kafka"
	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/infras/redis"
	"courtside/infras/s3"
	"courtside/shared/cache"
	"courtside/transport/http"
	"courtside/transport/http/middleware"
	"courtside/transport/http/router"

	coachRepository "courtside/internal/domains/coach/repository"
	coachService "courtside/internal/domains/coach/service"
	courtRepository "courtside/internal/domains/court/repository"
	courtService "courtside/internal/domains/court/service"
	equipmentRepository "courtside/internal/domains/equipment/repository"
	equipmentService "courtside/internal/domains/equipment/service"
	pricingRepository "courtside/internal/domains/pricing/repository"
	pricingService "courtside/internal/domains/pricing/service"
	reservationRepository "courtside/internal/domains/reservation/repository"
	reservationService "courtside/internal/domains/reservation/service"

	coachHandler "courtside/internal/handlers/coach"
	courtHandler "courtside/internal/handlers/court"
	equipmentHandler "courtside/internal/handlers/equipment"
	pricingHandler "courtside/internal/handlers/pricing"
	reservationHandler "courtside/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var courtDomain = wire.NewSet(
	courtRepository.New,
	courtService.New,
)

var coachDomain = wire.NewSet(
	coachRepository.New,
	coachService.New,
)

var equipmentDomain = wire.NewSet(
	equipmentRepository.New,
	equipmentService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	courtDomain,
	coachDomain,
	equipmentDomain,
	pricingDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	courtHandler.New,
	coachHandler.New,
	equipmentHandler.New,
	pricingHandler.New,
	reservationHandler.New,
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
