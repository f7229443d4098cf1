package router

import (
	"mallbook/internal/handlers/auth"
	"mallbook/internal/handlers/booking"
	"mallbook/internal/handlers/catalog"
	"mallbook/internal/handlers/store"
	"mallbook/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

const apiVersion = "/v1"

// registrar is implemented by every domain handler.
type registrar interface {
	Router(r chi.Router)
}

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Store   store.Handler
	Catalog catalog.Handler
	Booking booking.Handler
}

func (d DomainHandlers) all() []registrar {
	return []registrar{&d.Auth, &d.User, &d.Store, &d.Catalog, &d.Booking}
}

type Router struct {
	handlers []registrar
}

func New(domainHandlers DomainHandlers) Router {
	return Router{handlers: domainHandlers.all()}
}

// SetupRoutes mounts every domain under the versioned prefix. The permission
// table is keyed by the resulting patterns, so changing the prefix means
// updating it too.
func (r Router) SetupRoutes(mux chi.Router) {
	mux.Route(apiVersion, func(v1 chi.Router) {
		for _, h := range r.handlers {
			h.Router(v1)
		}
	})
}
