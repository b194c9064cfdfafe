package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/pharmabolt/pharmabolt-api/internal/api/middleware"
	"github.com/pharmabolt/pharmabolt-api/internal/api/shared"
	"github.com/pharmabolt/pharmabolt-api/internal/domain"
)

// NewRouter wires the full route tree. Drug reads are public; drug
// writes and all user management require an admin token, except the
// self-edit endpoint which only requires authentication.
func NewRouter(
	authHandler *AuthHandler,
	drugHandler *DrugHandler,
	userHandler *UserHandler,
	authMiddleware *apimiddleware.AuthMiddleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Welcome to the Pharmabolt API"))
		})

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Route("/drugs", func(r chi.Router) {
			r.Get("/", drugHandler.List)
			r.Get("/{id}", drugHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(authMiddleware.RequireRole(domain.RoleAdmin))
				r.Post("/", drugHandler.Create)
				r.Put("/{id}", drugHandler.Update)
				r.Delete("/{id}", drugHandler.Delete)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Put("/update", userHandler.UpdateSelf)
			})

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(authMiddleware.RequireRole(domain.RoleAdmin))
				r.Get("/", userHandler.List)
				r.Put("/{id}", userHandler.UpdateByID)
				r.Delete("/{id}", userHandler.Delete)
			})
		})
	})

	return r
}
