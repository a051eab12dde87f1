package router

import (
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
	"atithi/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Room      room.Handler
	Offer     offer.Handler
	User      user.Handler
	Booking   booking.Handler
	Payment   payment.Handler
	Dashboard dashboard.Handler
	Report    report.Handler
	Inventory inventory.Handler
	Review    review.Handler
	Whatsapp  whatsapp.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup, r.AuthMiddleware.Auth)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Offer.Router(protected)
			r.DomainHandlers.User.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
			r.DomainHandlers.Payment.Router(protected)
			r.DomainHandlers.Dashboard.Router(protected)
			r.DomainHandlers.Report.Router(protected)
			r.DomainHandlers.Inventory.Router(protected)
			r.DomainHandlers.Review.Router(protected)
			r.DomainHandlers.Whatsapp.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
