package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/config"
	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/network/router"
	"github.com/denmor86/ya-stitchmate/internal/storage"
	"github.com/denmor86/ya-stitchmate/internal/worker"
)

func Run(config config.Config) error {
	store, err := storage.NewStorage(config.Storage.DatabaseDSN, config.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	router := router.NewRouter(config, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// чтение коллекций при старте, повреждённые данные заменяются пустыми
	router.Orders.Load(ctx)
	router.Profiles.Load(ctx)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	var backups *worker.BackupWorker
	if config.Backup.Dir != "" && config.Backup.Interval > 0 {
		backups = worker.NewBackupWorker(router.Orders, router.Profiles, config.Backup.Dir, config.Backup.Interval)
		backups.Start(ctx)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server config:", config)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
	case err = <-serverErr:
		logger.Error("error listen server", err.Error())
	}
	logger.Info("Shutdown server")
	if backups != nil {
		backups.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("error shutdown server", shutdownErr.Error())
	}
	logger.Info("Server stopped")
	return err
}
