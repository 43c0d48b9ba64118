package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/service"
	"github.com/MKhiriev/climate-scenarios/internal/utils"
	"github.com/MKhiriev/climate-scenarios/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthenticated: http.StatusUnauthorized,
	service.ErrForbidden:       http.StatusForbidden,
	service.ErrNotFound:        http.StatusNotFound,
	service.ErrConflict:        http.StatusBadRequest,
	service.ErrBadRequest:      http.StatusBadRequest,
	service.ErrStorage:         http.StatusInternalServerError,
	service.ErrInternal:        http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidPathID:              http.StatusBadRequest,
	ErrInvalidQueryParam:          http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// statusLine renders a status code as "404 Not Found".
func statusLine(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

// writeError logs err and writes the {status, message} envelope. 5xx
// responses never carry the underlying error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	message := service.PublicMessage(err)
	var serviceErr *service.Error
	if status < http.StatusInternalServerError && !errors.As(err, &serviceErr) {
		message = err.Error()
	}

	writeErrorMessage(w, status, message)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Status:  statusLine(status),
		Message: message,
	}, status)
}
