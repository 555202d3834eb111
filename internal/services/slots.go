package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/storage"
)

// readSlot - читает коллекцию из слота. Отсутствующий или повреждённый слот даёт пустую коллекцию.
func readSlot[T any](ctx context.Context, st storage.IStorage, key string, into *T) {
	data, err := st.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warnw("Storage unreadable, starting with empty collection", "key", key, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, into); err != nil {
		logger.Warnw("Storage corrupt, starting with empty collection", "key", key, "error", err)
		var zero T
		*into = zero
	}
}

// writeSlot - сериализует коллекцию целиком и перезаписывает слот
func writeSlot(ctx context.Context, st storage.IStorage, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := st.Write(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
