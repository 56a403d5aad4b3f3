package http

import (
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/metrics"
	"github.com/mrmeaow/erp-iam-secureid/internal/redact"
	"github.com/mrmeaow/erp-iam-secureid/internal/service"
)

type Handler struct {
	services *service.Services

	// keys censors response data and access log bodies.
	keys *redact.KeySet

	// metrics is optional; nil leaves /metrics unrouted.
	metrics *metrics.Metrics

	// limiter is optional; nil disables rate limiting.
	limiter *limiterStore

	logger *logger.Logger
}

type Option func(*Handler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithRateLimit allows perMinute requests per client and minute.
// Zero or less disables the limiter.
func WithRateLimit(perMinute int) Option {
	return func(h *Handler) {
		if perMinute > 0 {
			h.limiter = newLimiterStore(perMinute)
		}
	}
}

func NewHandler(services *service.Services, keys *redact.KeySet, logger *logger.Logger, opts ...Option) *Handler {
	if keys == nil {
		keys = redact.DefaultKeySet()
	}

	h := &Handler{
		services: services,
		keys:     keys,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
