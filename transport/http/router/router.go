package router

import (
	"staywise/internal/handlers/booking"
	"staywise/internal/handlers/concierge"
	"staywise/internal/handlers/listing"
	"staywise/internal/handlers/notification"
	"staywise/internal/handlers/onboarding"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Listing      listing.Handler
	Onboarding   onboarding.Handler
	Concierge    concierge.Handler
	Booking      booking.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Listing.Router(routerGroup)
		r.DomainHandlers.Onboarding.Router(routerGroup)
		r.DomainHandlers.Concierge.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
