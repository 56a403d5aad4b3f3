package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mrmeaow/erp-iam-secureid/internal/config"
	"github.com/mrmeaow/erp-iam-secureid/internal/handler"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/metrics"
	"github.com/mrmeaow/erp-iam-secureid/internal/redact"
	"github.com/mrmeaow/erp-iam-secureid/internal/server"
	"github.com/mrmeaow/erp-iam-secureid/internal/service"
	"github.com/mrmeaow/erp-iam-secureid/internal/store"
	"github.com/mrmeaow/erp-iam-secureid/internal/telemetry"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// startupTimeout bounds connecting to and migrating the database.
const startupTimeout = 30 * time.Second

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("erpiam-server", cfg.Log.Level)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("env", cfg.App.Env).Msg("received configs")

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry, cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	db, err := store.NewConnectPostgres(startupCtx, cfg.Storage.DB, log)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(startupCtx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	cancel()

	m := metrics.New(cfg.App.Version)
	if err = m.RegisterDB(db.DB, "postgres"); err != nil {
		log.Warn().Err(err).Msg("database pool metrics are not registered")
	}

	keys := redact.DefaultKeySet()
	if len(cfg.Redaction.ExtraKeys) > 0 {
		keys.Register(cfg.Redaction.ExtraKeys...)
		log.Info().Strs("keys", cfg.Redaction.ExtraKeys).Msg("registered extra sensitive keys")
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, keys, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}
