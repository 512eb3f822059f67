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
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Get("/api/experiences", h.listExperiences)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/{id}", h.getUser)
		r.Patch("/api/users/{id}", h.updateUser)

		r.Post("/api/experiences", h.createExperience)

		r.Post("/api/tools/growth", h.projectGrowth)
		r.Post("/api/tools/loan", h.analyzeLoan)
		r.Post("/api/tools/risk", h.assessRisk)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
