package handler

import (
	"github.com/mrmeaow/erp-iam-secureid/internal/config"
	"github.com/mrmeaow/erp-iam-secureid/internal/handler/http"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/metrics"
	"github.com/mrmeaow/erp-iam-secureid/internal/redact"
	"github.com/mrmeaow/erp-iam-secureid/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. m may be nil,
// which leaves the metrics endpoints and middleware out.
func NewHandlers(services *service.Services, keys *redact.KeySet, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		opts := []http.Option{http.WithRateLimit(cfg.RateLimitPerMinute)}
		if m != nil {
			opts = append(opts, http.WithMetrics(m))
		}
		handlers.HTTP = http.NewHandler(services, keys, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
