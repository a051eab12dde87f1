// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	"atithi/internal/domains/auth/repository"
	"atithi/internal/domains/auth/service"
	repository5 "atithi/internal/domains/booking/repository"
	service5 "atithi/internal/domains/booking/service"
	repository7 "atithi/internal/domains/dashboard/repository"
	service7 "atithi/internal/domains/dashboard/service"
	service9 "atithi/internal/domains/inventory/service"
	repository3 "atithi/internal/domains/offer/repository"
	service3 "atithi/internal/domains/offer/service"
	repository6 "atithi/internal/domains/payment/repository"
	service6 "atithi/internal/domains/payment/service"
	repository8 "atithi/internal/domains/report/repository"
	service8 "atithi/internal/domains/report/service"
	repository9 "atithi/internal/domains/review/repository"
	service10 "atithi/internal/domains/review/service"
	repository2 "atithi/internal/domains/room/repository"
	service2 "atithi/internal/domains/room/service"
	repository4 "atithi/internal/domains/user/repository"
	service4 "atithi/internal/domains/user/service"
	repository10 "atithi/internal/domains/whatsapp/repository"
	service11 "atithi/internal/domains/whatsapp/service"
	"atithi/internal/handlers/auth"
	"atithi/internal/handlers/booking"
	"atithi/internal/handlers/dashboard"
	"atithi/internal/handlers/inventory"
	"atithi/internal/handlers/offer"
	"atithi/internal/handlers/payment"
	"atithi/internal/handlers/report"
	"atithi/internal/handlers/review"
	"atithi/internal/handlers/room"
	"atithi/internal/handlers/user"
	"atithi/internal/handlers/whatsapp"
	"atithi/shared/cache"
	"atithi/shared/idgen"
	"atithi/transport/http"
	"atithi/transport/http/middleware"
	"atithi/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	admin := repository.New(connection, otelOtel)
	generator := idgen.New()
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(admin, configConfig, generator, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryRoom := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceRoom := service2.New(repositoryRoom, configConfig, redisCache, s3S3, generator, otelOtel)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryOffer := repository3.New(connection, otelOtel)
	serviceOffer := service3.New(repositoryOffer, repositoryRoom, configConfig, redisCache, generator, otelOtel)
	offerHandler := offer.New(serviceOffer, otelOtel)
	repositoryUser := repository4.New(connection, otelOtel)
	serviceUser := service4.New(repositoryUser, configConfig, redisCache, generator, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryBooking := repository5.New(connection, otelOtel)
	repositoryPayment := repository6.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service5.New(repositoryBooking, repositoryRoom, repositoryOffer, repositoryUser, repositoryPayment, connection, configConfig, redisCache, kafkaClient, generator, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	servicePayment := service6.New(repositoryPayment, configConfig, redisCache, otelOtel)
	paymentHandler := payment.New(servicePayment, otelOtel)
	repositoryDashboard := repository7.New(connection, otelOtel)
	serviceDashboard := service7.New(repositoryDashboard, configConfig, redisCache, otelOtel)
	dashboardHandler := dashboard.New(serviceDashboard, otelOtel)
	repositoryReport := repository8.New(connection, otelOtel)
	serviceReport := service8.New(repositoryReport, configConfig, redisCache, otelOtel)
	reportHandler := report.New(serviceReport, otelOtel)
	serpapiClient := serpapi.New(configConfig, otelOtel)
	serviceInventory := service9.New(serpapiClient, configConfig, redisCache, otelOtel)
	inventoryHandler := inventory.New(serviceInventory, otelOtel)
	repositoryReview := repository9.New(connection, otelOtel)
	serviceReview := service10.New(repositoryReview, otelOtel)
	reviewHandler := review.New(serviceReview, otelOtel)
	repositoryWhatsapp := repository10.New(connection, otelOtel)
	serviceWhatsapp := service11.New(repositoryWhatsapp, otelOtel)
	whatsappHandler := whatsapp.New(serviceWhatsapp, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:      handler,
		Room:      roomHandler,
		Offer:     offerHandler,
		User:      userHandler,
		Booking:   bookingHandler,
		Payment:   paymentHandler,
		Dashboard: dashboardHandler,
		Report:    reportHandler,
		Inventory: inventoryHandler,
		Review:    reviewHandler,
		Whatsapp:  whatsappHandler,
	}
	middlewareAuth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	routerRouter := router.New(domainHandlers, middlewareAuth)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New, serpapi.New, wire.Bind(new(service5.TxRunner), new(*postgres.Connection)))

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, idgen.New)

var authDomain = wire.NewSet(repository.New, service.New)

var roomDomain = wire.NewSet(repository2.New, service2.New)

var offerDomain = wire.NewSet(repository3.New, service3.New)

var userDomain = wire.NewSet(repository4.New, service4.New)

var bookingDomain = wire.NewSet(repository5.New, service5.New)

var paymentDomain = wire.NewSet(repository6.New, service6.New)

var dashboardDomain = wire.NewSet(repository7.New, service7.New)

var reportDomain = wire.NewSet(repository8.New, service8.New)

var inventoryDomain = wire.NewSet(service9.New)

var reviewDomain = wire.NewSet(repository9.New, service10.New)

var whatsappDomain = wire.NewSet(repository10.New, service11.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, room.New, offer.New, user.New, booking.New, payment.New, dashboard.New, report.New, inventory.New, review.New, whatsapp.New, router.New)
