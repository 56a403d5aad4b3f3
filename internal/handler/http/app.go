package http

import (
	"net/http"

	"github.com/mrmeaow/erp-iam-secureid/internal/service"
)

func (h *Handler) hello(r *http.Request) (any, error) {
	return h.services.AppInfoService.Hello(r.Context()), nil
}

// health answers 200 with {"status":"ok"} when every dependency is up and
// 503 otherwise. The health paths are excluded, so the body is not wrapped.
func (h *Handler) health(r *http.Request) (any, error) {
	health := h.services.AppInfoService.Health(r.Context())
	if health.Status != service.HealthStatusOK {
		SetStatus(r, http.StatusServiceUnavailable)
	}
	return health, nil
}
