package store

import "github.com/mrmeaow/erp-iam-secureid/internal/logger"

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository UserRepository
	HealthChecker  HealthChecker
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		HealthChecker:  db,
	}
}
