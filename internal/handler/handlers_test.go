package handler

import (
	"errors"
	"testing"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so no service is called during construction.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTP verifies that a configured HTTP address yields an
// initialised HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", APIPrefix: "/api"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that an empty address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	assert.Nil(t, h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
