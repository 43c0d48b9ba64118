package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured browser origins to call the API with
// credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Accept", "Content-Type"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           h.corsMaxAge,
	})
}
