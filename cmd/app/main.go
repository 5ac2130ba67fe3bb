package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mossvale/farmstead/internal/animal"
	"github.com/mossvale/farmstead/internal/bootstrap"
	"github.com/mossvale/farmstead/internal/concurrency"
	"github.com/mossvale/farmstead/internal/config"
	"github.com/mossvale/farmstead/internal/crop"
	"github.com/mossvale/farmstead/internal/database"
	"github.com/mossvale/farmstead/internal/database/postgres"
	"github.com/mossvale/farmstead/internal/economy"
	"github.com/mossvale/farmstead/internal/farm"
	"github.com/mossvale/farmstead/internal/player"
	"github.com/mossvale/farmstead/internal/scheduler"
	"github.com/mossvale/farmstead/internal/server"
	"github.com/mossvale/farmstead/internal/worker"
	"github.com/mossvale/farmstead/internal/world"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Run database migrations before opening the pool
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		return err
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		return err
	}

	repo := postgres.NewRepository(dbPool)
	locks := concurrency.NewLockManager()

	playerService := player.NewService(repo, resilientPublisher, locks, cfg.PlayerCacheSize, cfg.PlayerCacheTTL)
	farmService := farm.NewService(repo, resilientPublisher, locks)
	cropService := crop.NewService(repo, playerService, resilientPublisher, locks)
	animalService := animal.NewService(repo, playerService, resilientPublisher, locks)
	worldService := world.NewService(repo, resilientPublisher, locks)
	economyService := economy.NewService(repo, resilientPublisher, locks)

	workerPool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.SalesRetentionInterval, worker.NewSalesRetentionJob(repo, cfg.SalesRetentionKeep))

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		dbPool,
		playerService,
		farmService,
		cropService,
		animalService,
		worldService,
		economyService,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         workerPool,
		ResilientPublisher: resilientPublisher,
	})

	return nil
}
