package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mrmeaow/erp-iam-secureid/models"
)

var ErrUnhealthy = errors.New("service is not healthy")

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with application-specific calls.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3333", 5*time.Second)
//	health, err := client.Health(ctx)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL. A zero timeout leaves
// resty's default (no timeout).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// Health calls GET /health and returns the raw health body. ErrUnhealthy is
// returned when the service answers with anything other than 200/"ok".
func (c *HTTPClient) Health(ctx context.Context) (models.Health, error) {
	var health models.Health

	resp, err := c.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.Health{}, fmt.Errorf("error calling health endpoint: %w", err)
	}

	if resp.StatusCode() != 200 || health.Status != "ok" {
		return health, fmt.Errorf("%w: status %d, body %s", ErrUnhealthy, resp.StatusCode(), resp.String())
	}

	return health, nil
}
