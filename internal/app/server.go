package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Santy1924/Online-Course-Platform/internal/api"
	"github.com/Santy1924/Online-Course-Platform/internal/config"
	"github.com/Santy1924/Online-Course-Platform/internal/db"
	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
	"github.com/Santy1924/Online-Course-Platform/internal/kafka"
	"github.com/Santy1924/Online-Course-Platform/internal/metrics"
	mw "github.com/Santy1924/Online-Course-Platform/internal/middleware"
	"github.com/Santy1924/Online-Course-Platform/internal/server"
	authmw "github.com/Santy1924/Online-Course-Platform/internal/server/middleware"
)

type App struct {
	echo            *echo.Echo
	db              *db.Client
	apiServer       *server.APIServer
	httpServer      server.HTTPServer
	metricsClient   metrics.MetricsClient
	shutdownTimeout time.Duration
	sessionCfg      config.SessionConfig
}

func New(cfg *config.Config) (*App, error) {
	e := echo.New()
	e.Validator = server.NewRequestValidator()

	dbClient, err := db.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	if err := dbClient.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Course{},
		&model.Lesson{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	metricsClient := newMetricsClient(cfg.Kafka)
	business := metrics.NewBusinessMetrics(metricsClient)

	apiServer := server.NewAPIServer(dbClient, business)

	metricsMW := mw.NewMetricsMiddleware(metricsClient)
	inflightMW := mw.NewInflightMiddleware(metricsClient)

	e.Use(inflightMW.Handle)
	e.Use(metricsMW.Handle)
	e.Use(authmw.Auth(apiServer.UserRepo(), apiServer.SessionRepo(), []string{
		"/health",
		"/api/auth/register",
		"/api/auth/login",
	}))

	api.RegisterHandlers(e, apiServer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	httpServer := server.NewHTTPServer(addr, e)

	return &App{
		echo:            e,
		db:              dbClient,
		apiServer:       apiServer,
		httpServer:      httpServer,
		metricsClient:   metricsClient,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		sessionCfg:      cfg.Session,
	}, nil
}

// newMetricsClient falls back to a noop client when Kafka is disabled or
// unreachable so the API keeps serving without the metrics pipeline.
func newMetricsClient(cfg config.KafkaConfig) metrics.MetricsClient {
	if !cfg.Enabled {
		return metrics.NoopMetricsClient{}
	}

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Printf("Kafka producer init failed, metrics disabled: %v", err)
		return metrics.NoopMetricsClient{}
	}

	return metrics.NewKafkaMetricsClient(producer, cfg.TopicMetrics, context.Background())
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- a.httpServer.Start(ctx)
	}()

	go a.runSessionCleanup(ctx)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			a.shutdownTimeout,
		)
		defer cancel()

		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		}

		if err := a.metricsClient.Close(); err != nil {
			log.Printf("Error closing metrics client: %v", err)
		}

		if err := a.db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}

		return nil
	}
}

func (a *App) runSessionCleanup(ctx context.Context) {
	ticker := time.NewTicker(a.sessionCfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := a.apiServer.SessionRepo().CleanOutdated(ctx, a.sessionCfg.TTL)
			if err != nil {
				log.Printf("Session cleanup error: %v", err)
			} else if deleted > 0 {
				log.Printf("Session cleanup: removed %d expired sessions", deleted)
			}
		}
	}
}
