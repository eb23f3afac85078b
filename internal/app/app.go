package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gorm.io/gorm"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/db"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/http"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime/bus"
)

type Options struct {
	// AutoMigrate runs AutoMigrate and the learning indexes before wiring.
	AutoMigrate bool
}

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *http.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	SSEHub   *realtime.SSEHub
	Bus      bus.Bus

	store        *db.PostgresService
	otelShutdown func(context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
}

func New(opts Options) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, cfg.Otel)

	store, err := db.NewPostgresService(log, cfg.DB)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if opts.AutoMigrate {
		if err := store.AutoMigrateAll(); err != nil {
			_ = store.Close()
			log.Sync()
			return nil, fmt.Errorf("database automigrate: %w", err)
		}
	}
	theDB := store.DB()

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.New(log)
		if sqlDB, err := theDB.DB(); err == nil {
			if err := metrics.RegisterDBStats(sqlDB, store.Driver()); err != nil {
				log.Warn("db stats collector not registered", "error", err)
			}
		}
	}

	eventBus, err := wireBus(log, cfg)
	if err != nil {
		_ = store.Close()
		log.Sync()
		return nil, err
	}

	ssehub := realtime.NewSSEHub(log)
	ssehub.SetHeartbeat(cfg.SSEHeartbeat)

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, eventBus, metrics)
	handlerset := wireHandlers(log, serviceset, ssehub, store.Ping)
	middleware := wireMiddleware(log, cfg)
	server := wireRouter(log, cfg, metrics, handlerset, middleware)

	return &App{
		Log:          log,
		DB:           theDB,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		SSEHub:       ssehub,
		Bus:          eventBus,
		store:        store,
		otelShutdown: otelShutdown,
	}, nil
}

// wireBus picks redis pub/sub when REDIS_ADDR is set so every instance sees
// every event; otherwise events stay in process.
func wireBus(log *logger.Logger, cfg Config) (bus.Bus, error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR unset, using in-process realtime bus")
		return bus.NewLocalBus(), nil
	}
	b, err := bus.NewRedisBus(log, bus.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Channel:  cfg.RedisChannel,
	})
	if err != nil {
		return nil, fmt.Errorf("init realtime bus: %w", err)
	}
	return b, nil
}

// Start begins forwarding bus messages to local SSE clients.
func (a *App) Start() error {
	if a == nil {
		return errors.New("app not initialized")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := a.Bus.StartForwarder(ctx, a.SSEHub.Broadcast); err != nil {
		cancel()
		return fmt.Errorf("start realtime forwarder: %w", err)
	}
	a.cancel = cancel
	return nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
		errCh <- a.Server.Run(a.Cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Info("Shutting down HTTP server", "timeout", a.Cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.mu.Unlock()

	if a.Bus != nil {
		if err := a.Bus.Close(); err != nil {
			a.Log.Warn("realtime bus close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

// Migrate runs AutoMigrate and the learning indexes.
func (a *App) Migrate() error {
	if a == nil || a.store == nil {
		return errors.New("app not initialized")
	}
	return a.store.AutoMigrateAll()
}
