package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/export"
	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/models"
)

// Snapshot - источник данных для резервной копии
type Snapshot interface {
	All() []models.Order
}

// ProfilesSnapshot - источник профилей для резервной копии
type ProfilesSnapshot interface {
	All() map[string]models.Profile
}

// BackupWorker - периодически пишет резервную копию в локальный каталог
type BackupWorker struct {
	Orders       Snapshot
	Profiles     ProfilesSnapshot
	Dir          string
	PollInterval time.Duration
	Now          func() time.Time
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
}

// NewBackupWorker - конструктор воркера резервного копирования
func NewBackupWorker(orders Snapshot, profiles ProfilesSnapshot, dir string, interval time.Duration) *BackupWorker {
	return &BackupWorker{
		Orders:       orders,
		Profiles:     profiles,
		Dir:          dir,
		PollInterval: interval,
		Now:          time.Now,
		QuitChan:     make(chan struct{}),
	}
}

// Start - запускает воркер в фоне
func (w *BackupWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - останавливает воркер и дожидается завершения
func (w *BackupWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

func (w *BackupWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("BackupWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.Backup(); err != nil {
				logger.Error("Backup failed:", err)
			}
		}
	}
}

// Backup - пишет снимок в файл stitchmate_backup_<дата>.json, возвращает путь.
// Копия за тот же день перезаписывается.
func (w *BackupWorker) Backup() (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup dir: %w", err)
	}
	now := w.Now()
	backup := export.NewBackup(w.Orders.All(), w.Profiles.All(), now)
	path := filepath.Join(w.Dir, export.BackupFileName(now))

	tmp, err := os.CreateTemp(w.Dir, "backup.*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := export.WriteBackup(tmp, backup); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close backup: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to store backup: %w", err)
	}
	logger.Info("Backup written:", path, "orders:", len(backup.Orders))
	return path, nil
}
