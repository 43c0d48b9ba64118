package http

import (
	"net/http"

	"github.com/MKhiriev/climate-scenarios/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the "Authorization: Bearer <token>" header, verifies the token via
// [service.AuthService.ParseToken] and stores the verified token in the
// request context with [utils.WithToken] before delegating to the next
// handler.
//
// Requests are rejected with 401 when the header is absent, malformed, or the
// token is expired or invalid. The body is the usual error envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithToken(ctx, token)))
	})
}
