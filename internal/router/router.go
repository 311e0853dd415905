package router

import (
	"net/http"

	"github.com/aquawash/api/internal/enum"
	"github.com/aquawash/api/internal/handler"
	"github.com/aquawash/api/internal/middleware"
	"github.com/aquawash/api/internal/ws"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps carries everything the router mounts.
type Deps struct {
	Auth      *handler.AuthHandler
	Services  *handler.ServiceHandler
	Orders    *handler.OrderHandler
	Hub       *ws.Hub
	JWTSecret string
}

// New builds the HTTP router: public auth endpoints, an authenticated
// customer group and an admin-only group on top of it.
func New(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	deps.Auth.RegisterRoutes(r)

	// WebSocket upgrades authenticate via ?token= since browsers cannot
	// set headers on the handshake.
	r.Get("/ws/orders", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWS(deps.Hub, deps.JWTSecret, w, req)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(deps.JWTSecret))

		deps.Services.RegisterRoutes(r)
		deps.Orders.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enum.UserRoleAdmin))

			deps.Services.RegisterAdminRoutes(r)
			deps.Orders.RegisterAdminRoutes(r)
		})
	})

	return r
}
