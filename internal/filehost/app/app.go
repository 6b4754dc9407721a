package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpHandler "github.com/anthanhphan/go-file-board/internal/filehost/adapter/inbound/http"
	"github.com/anthanhphan/go-file-board/internal/filehost/adapter/outbound/disk"
	"github.com/anthanhphan/go-file-board/internal/filehost/adapter/outbound/memory"
	"github.com/anthanhphan/go-file-board/internal/filehost/adapter/outbound/redisnotice"
	"github.com/anthanhphan/go-file-board/internal/filehost/config"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/go-file-board/internal/filehost/service"
	"github.com/anthanhphan/go-file-board/pkg/idgen"
	"github.com/anthanhphan/gosdk/logger"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg         *config.Config
	server      *httpHandler.Server
	hub         *service.Hub
	notice      *service.Notice
	redisClient *redis.Client
}

func New(configPath string) (*App, error) {
	// 1. Load Config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logger.InitLogger(&cfg.Logger)

	return build(cfg)
}

func build(cfg *config.Config) (*App, error) {
	// 3. Storage backend
	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	// 4. Optional Redis: notice persistence and ID clock
	var (
		redisClient *redis.Client
		store       port.NoticeStore
		clock       idgen.Clock = idgen.SystemClock{}
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = redisnotice.NewStore(redisClient, cfg.Redis.NoticeKey)
		clock = idgen.NewRedisClock(redisClient)
	}

	idGen, err := idgen.NewGenerator(cfg.App.NodeID, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to init id generator: %w", err)
	}

	// 5. Notice board
	notice := service.NewNotice(store)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := notice.Restore(ctx); err != nil {
		// Start empty rather than refuse to serve files.
		logger.Warnw("Notice restore failed, starting empty", "error", err.Error())
	}
	cancel()

	hub := service.NewHub(idGen, cfg.Hub.OutboxSize)
	board := service.NewSyncService(notice, hub)

	// 6. Files
	files := service.NewFileService(cfg, backend)

	// 7. HTTP Server
	httpServer := httpHandler.NewServer(cfg, files, board)

	return &App{
		cfg:         cfg,
		server:      httpServer,
		hub:         hub,
		notice:      notice,
		redisClient: redisClient,
	}, nil
}

func newBackend(cfg *config.Config) (port.Backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverDisk, "":
		backend, err := disk.NewAdapter(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to init disk storage: %w", err)
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (a *App) Run() error {
	logger.Infow("File host starting",
		"addr", a.cfg.Server.Addr,
		"storage_driver", a.cfg.Storage.Driver,
		"retention_capacity", a.cfg.Retention.Capacity,
		"redis_enabled", a.cfg.Redis.Enabled,
	)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case sig := <-stop:
		logger.Infow("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrCh:
		runErr = fmt.Errorf("http server failed: %w", err)
		logger.Errorw("File host exited unexpectedly", "error", err.Error())
	}

	if err := a.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown closes live connections first, then drains pending notice saves,
// then stops the HTTP server.
func (a *App) Shutdown() error {
	logger.Info("Shutting down file host")

	a.hub.Close()
	a.notice.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	if stopErr := a.server.Stop(ctx); stopErr != nil {
		logger.Errorw("HTTP shutdown error", "error", stopErr.Error())
		err = stopErr
	}

	if a.redisClient != nil {
		if closeErr := a.redisClient.Close(); closeErr != nil {
			logger.Warnw("Redis close error", "error", closeErr.Error())
		}
	}
	return err
}
