package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	httptransport "github.com/deskmetrics/helpdesk-reports/internal/api/http"
	"github.com/deskmetrics/helpdesk-reports/internal/api/http/handlers"
	"github.com/deskmetrics/helpdesk-reports/internal/auth"
	"github.com/deskmetrics/helpdesk-reports/internal/config"
	"github.com/deskmetrics/helpdesk-reports/internal/events"
	"github.com/deskmetrics/helpdesk-reports/internal/observability"
	"github.com/deskmetrics/helpdesk-reports/internal/persistence"
	"github.com/deskmetrics/helpdesk-reports/internal/report"
	"github.com/deskmetrics/helpdesk-reports/internal/repository"
	"github.com/deskmetrics/helpdesk-reports/internal/service"
	"github.com/deskmetrics/helpdesk-reports/internal/snapshot"
	"github.com/deskmetrics/helpdesk-reports/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var envFile, credentialsFile string

	flagSet := pflag.NewFlagSet("helpdesk-reports", pflag.ContinueOnError)
	flagSet.StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment (default: .env if present)")
	flagSet.StringVar(&credentialsFile, "credentials", "", "staff credential file (overrides AUTH_CREDENTIALS_FILE)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if credentialsFile != "" {
		cfg.Auth.CredentialsFile = credentialsFile
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.shutdown()

	if cfg.Store.RunMigrations {
		if err := persistence.RunMigrations(ctx, store.execer, logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	snap, err := snapshot.Load(ctx, repository.NewRepositories(store.querier), logger)
	if err != nil {
		return err
	}

	credentials, err := auth.LoadCredentials(cfg.Auth.CredentialsFile, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	logger.Info("credentials loaded", zap.Int("accounts", credentials.Len()))

	verifier, err := auth.NewCodeVerifier(cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("prepare code verifier: %w", err)
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(service.AuthDependencies{
		Credentials: credentials,
		Verifier:    verifier,
		Throttle:    auth.NewLoginLimiter(redis.Client, cfg.Auth.MaxFailedLogins, cfg.Auth.LockoutWindow(), logger),
		Tokens:      tokens,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	reportService := service.NewReportService(snap, report.NewRandomEstimator(), dispatcher, logger, cfg.Report)

	metrics := observability.NewMetrics()
	dependencies := map[string]handlers.Pinger{cfg.Store.Driver: store.pinger}
	if redis.Enabled() {
		dependencies["redis"] = redis
	}
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		BodyLimit:             cfg.App.BodyLimitBytes,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, reportService, metrics, dependencies),
		Reports:        handlers.NewReportsHandler(reportService),
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, authService),
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		errCh <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("fiber listen: %w", err)
	case sig := <-shutdownSignal():
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	return app.ShutdownWithTimeout(10 * time.Second)
}

// store is the snapshot source selected by STORE_DRIVER.
type store struct {
	querier  repository.Querier
	execer   persistence.Execer
	pinger   handlers.Pinger
	shutdown func()
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		db, err := persistence.NewSQLite(ctx, cfg.SQLite, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &store{querier: repository.FromSQLDB(db.DB), execer: db, pinger: db, shutdown: db.Close}, nil
	default:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &store{querier: repository.FromPgxPool(pg.Pool), execer: pg, pinger: pg, shutdown: pg.Close}, nil
	}
}

func shutdownSignal() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
