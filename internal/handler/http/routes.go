package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route lives under the configured API prefix.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(middleware.StripSlashes)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route(h.apiPrefix, func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			// routes with authorization
			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.listScenarios)
			r.Get("/filters/options", h.getFilterOptions)
			r.Get("/{id}", h.getScenario)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Post("/", h.createItem)
			r.Get("/{id}", h.getItem)
			r.Put("/{id}", h.updateItem)
			r.Delete("/{id}", h.deleteItem)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorMessage(w, http.StatusNotFound, "Resource not found")
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
