//go:build wireinject
// +build wireinject

package di

import (
	"atithi/config"
	"atithi/infras/jwt"
	"atithi/infras/kafka"
	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/infras/redis"
	"atithi/infras/s3"
	"atithi/infras/serpapi"
	"atithi/shared/cache"
	"atithi/shared/idgen"
	"atithi/transport/http"
	"atithi/transport/http/middleware"
	"atithi/transport/http/router"

	"github.com/google/wire"

	adminRepository "atithi/internal/domains/auth/repository"
	authService "atithi/internal/domains/auth/service"
	authHandler "atithi/internal/handlers/auth"

	roomRepository "atithi/internal/domains/room/repository"
	roomService "atithi/internal/domains/room/service"
	roomHandler "atithi/internal/handlers/room"

	offerRepository "atithi/internal/domains/offer/repository"
	offerService "atithi/internal/domains/offer/service"
	offerHandler "atithi/internal/handlers/offer"

	userRepository "atithi/internal/domains/user/repository"
	userService "atithi/internal/domains/user/service"
	userHandler "atithi/internal/handlers/user"

	bookingRepository "atithi/internal/domains/booking/repository"
	bookingService "atithi/internal/domains/booking/service"
	bookingHandler "atithi/internal/handlers/booking"

	paymentRepository "atithi/internal/domains/payment/repository"
	paymentService "atithi/internal/domains/payment/service"
	paymentHandler "atithi/internal/handlers/payment"

	dashboardRepository "atithi/internal/domains/dashboard/repository"
	dashboardService "atithi/internal/domains/dashboard/service"
	dashboardHandler "atithi/internal/handlers/dashboard"

	reportRepository "atithi/internal/domains/report/repository"
	reportService "atithi/internal/domains/report/service"
	reportHandler "atithi/internal/handlers/report"

	inventoryService "atithi/internal/domains/inventory/service"
	inventoryHandler "atithi/internal/handlers/inventory"

	reviewRepository "atithi/internal/domains/review/repository"
	reviewService "atithi/internal/domains/review/service"
	reviewHandler "atithi/internal/handlers/review"

	whatsappRepository "atithi/internal/domains/whatsapp/repository"
	whatsappService "atithi/internal/domains/whatsapp/service"
	whatsappHandler "atithi/internal/handlers/whatsapp"
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
	serpapi.New,
	wire.Bind(new(bookingService.TxRunner), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	idgen.New,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var offerDomain = wire.NewSet(
	offerRepository.New,
	offerService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var whatsappDomain = wire.NewSet(
	whatsappRepository.New,
	whatsappService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	offerDomain,
	userDomain,
	bookingDomain,
	paymentDomain,
	dashboardDomain,
	reportDomain,
	inventoryDomain,
	reviewDomain,
	whatsappDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	offerHandler.New,
	userHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	dashboardHandler.New,
	reportHandler.New,
	inventoryHandler.New,
	reviewHandler.New,
	whatsappHandler.New,
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
