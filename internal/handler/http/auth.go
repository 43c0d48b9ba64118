package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/service"
	"github.com/MKhiriev/climate-scenarios/internal/utils"
	"github.com/MKhiriev/climate-scenarios/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user registered")

	utils.WriteJSON(w, user.ToResponse(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.String(),
		User:  user.ToResponse(),
	}, http.StatusOK)
}

// me echoes the identity carried by the verified token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		ID:       token.UserID,
		Username: token.Username,
	}, http.StatusOK)
}
