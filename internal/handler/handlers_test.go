package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmeaow/erp-iam-secureid/internal/config"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/metrics"
	"github.com/mrmeaow/erp-iam-secureid/internal/redact"
	"github.com/mrmeaow/erp-iam-secureid/internal/service"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so it is safe for construction-time tests.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:        ":3333",
		RateLimitPerMinute: 100,
	}

	h, err := NewHandlers(newTestServices(), redact.DefaultKeySet(), metrics.New("test"), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_WithoutMetrics(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":3333"}

	h, err := NewHandlers(newTestServices(), nil, nil, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that a configuration without an HTTP
// address is rejected with errNoHandlersAreCreated.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
