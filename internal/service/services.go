package service

import (
	"crypto/rsa"

	"github.com/mrmeaow/erp-iam-secureid/internal/config"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/store"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
)

type Services struct {
	UserService    UserService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages.
//
// Missing or unreadable key files do not stop the server: login then fails
// with ErrNoSigningKey and protected routes reject every token.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	signKey, verifyKey := loadKeys(cfg.JWT, logger)

	return &Services{
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		AuthService:    NewAuthService(storages.UserRepository, cfg.JWT, signKey, verifyKey, logger),
		AppInfoService: appInfo,
	}, nil
}

func loadKeys(cfg config.JWT, logger *logger.Logger) (*rsa.PrivateKey, *rsa.PublicKey) {
	signKey, err := utils.LoadRSAPrivateKey(cfg.PrivateKeyPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.PrivateKeyPath).Msg("private key is not loaded, login is disabled")
	}

	verifyKey, err := utils.LoadRSAPublicKey(cfg.PublicKeyPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.PublicKeyPath).Msg("public key is not loaded, protected routes reject every token")
	}

	return signKey, verifyKey
}
