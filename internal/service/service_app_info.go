package service

import (
	"context"

	"github.com/mrmeaow/erp-iam-secureid/internal/config"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/store"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"

	DatabaseUp   = "up"
	DatabaseDown = "down"

	helloMessage = "Hello World!"
)

type appInfoService struct {
	appVersion string

	healthChecker store.HealthChecker

	logger *logger.Logger
}

// NewAppInfoService returns the service behind the root and health routes.
// healthChecker may be nil, in which case the database is not reported.
func NewAppInfoService(cfg config.App, healthChecker store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		healthChecker: healthChecker,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Hello(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Msg("hello called")
	return helloMessage
}

// Health reports "ok" unless the database ping fails.
func (s *appInfoService) Health(ctx context.Context) models.Health {
	health := models.Health{Status: HealthStatusOK, Version: s.appVersion}
	if s.healthChecker == nil {
		return health
	}

	if err := s.healthChecker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		health.Status = HealthStatusError
		health.Database = DatabaseDown
		return health
	}

	health.Database = DatabaseUp
	return health
}
