package logging

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/models"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// PruneSystemLogs deletes persisted log records older than retentionDays.
func PruneSystemLogs(db *gorm.DB, retentionDays int, now time.Time) (int64, error) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// StartRetention schedules a daily prune of system_logs. Stop the returned
// scheduler on shutdown.
func StartRetention(db *gorm.DB, retentionDays int) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		deleted, err := PruneSystemLogs(db, retentionDays, time.Now())
		if err != nil {
			slog.Error("log cleanup failed", "error", err)
			return
		}
		if deleted > 0 {
			slog.Info("log cleanup completed", "deleted", deleted)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule log cleanup: %w", err)
	}
	c.Start()
	return c, nil
}
