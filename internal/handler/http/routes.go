package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind the session token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/me", h.me)
		r.Put("/update", h.updateUser)
		r.Delete("/delete", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
