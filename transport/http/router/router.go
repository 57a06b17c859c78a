package router

import (
	"frontdesk/internal/handlers/audit"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/organization"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Room         room.Handler
	Booking      booking.Handler
	Guest        guest.Handler
	Organization organization.Handler
	Audit        audit.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Organization.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
