//go:build wireinject
// +build wireinject

package di

import (
	"staywise/config"
	"staywise/infras/genai"
	"staywise/infras/kafka"
	"staywise/infras/otel"
	"staywise/infras/postgres"
	"staywise/infras/redis"
	"staywise/shared/cache"
	"staywise/transport/http"
	"staywise/transport/http/middleware"
	"staywise/transport/http/router"

	bookingRepository "staywise/internal/domains/booking/repository"
	bookingService "staywise/internal/domains/booking/service"
	conciergeRepository "staywise/internal/domains/concierge/repository"
	conciergeService "staywise/internal/domains/concierge/service"
	listingRepository "staywise/internal/domains/listing/repository"
	listingService "staywise/internal/domains/listing/service"
	notificationRepository "staywise/internal/domains/notification/repository"
	notificationService "staywise/internal/domains/notification/service"
	onboardingRepository "staywise/internal/domains/onboarding/repository"
	onboardingService "staywise/internal/domains/onboarding/service"

	bookingHandler "staywise/internal/handlers/booking"
	conciergeHandler "staywise/internal/handlers/concierge"
	listingHandler "staywise/internal/handlers/listing"
	notificationHandler "staywise/internal/handlers/notification"
	onboardingHandler "staywise/internal/handlers/onboarding"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	wire.Bind(new(otel.Otel), new(*otel.Provider)),
	redis.New,
	kafka.New,
	genai.New,
	provideClosers,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var listingDomain = wire.NewSet(
	listingRepository.NewListing,
	listingRepository.NewRoom,
	listingService.New,
)

var onboardingDomain = wire.NewSet(
	onboardingRepository.New,
	onboardingService.New,
)

var conciergeDomain = wire.NewSet(
	conciergeRepository.New,
	conciergeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewPayment,
	bookingRepository.NewMaintenance,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	listingDomain,
	onboardingDomain,
	conciergeDomain,
	bookingDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	listingHandler.New,
	onboardingHandler.New,
	conciergeHandler.New,
	bookingHandler.New,
	notificationHandler.New,
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
