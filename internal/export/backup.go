package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/models"
)

// NewBackup - снимок всех заказов и профилей
func NewBackup(orders []models.Order, profiles map[string]models.Profile, now time.Time) models.Backup {
	if orders == nil {
		orders = []models.Order{}
	}
	if profiles == nil {
		profiles = map[string]models.Profile{}
	}
	return models.Backup{Orders: orders, Profiles: profiles, ExportedAt: now.UTC()}
}

func WriteBackup(w io.Writer, backup models.Backup) error {
	return writeIndented(w, backup)
}

func BackupFileName(now time.Time) string {
	return "stitchmate_backup_" + now.Format(models.DateLayout) + ".json"
}

// WriteOrderJSON - заказ как есть, с отступами
func WriteOrderJSON(w io.Writer, order models.Order) error {
	return writeIndented(w, order)
}

func OrderFileName(order models.Order) string {
	return "order_" + order.ID + ".json"
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
