package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/database/databasetest"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var info, errs bytes.Buffer
	logger := slog.New(NewMultiHandler(
		NewJSONHandler(&info, "info"),
		NewJSONHandler(&errs, "error"),
	)).With("service", "daily-diet")

	logger.Info("meal created")
	logger.Error("insert failed")

	assert.Equal(t, 2, bytes.Count(info.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(errs.Bytes(), []byte("\n")))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(errs.Bytes()), &line))
	assert.Equal(t, "insert failed", line["msg"])
	assert.Equal(t, "daily-diet", line["service"])
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := databasetest.New(t)
	h := NewDBHandler(db, time.Hour)
	t.Cleanup(h.Stop)

	userID := uuid.NewString()
	logger := slog.New(h).With("request_id", "req-1")
	logger.Info("ignored")
	logger.Error("update failed", "user_id", userID, "error", "boom", "latency_ms", 12.6, "route", "/meals/:mealId")

	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	h.Flush()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "update failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, userID, *entry.UserID)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, "/meals/:mealId", extra["route"])
}

func TestDBHandlerStopFlushes(t *testing.T) {
	db := databasetest.New(t)
	h := NewDBHandler(db, time.Hour)

	slog.New(h).Error("shutdown pending")
	h.Stop()
	h.Stop()

	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPruneSystemLogs(t *testing.T) {
	db := databasetest.New(t)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	old := models.SystemLog{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -31), Level: "ERROR"}
	fresh := models.SystemLog{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -1), Level: "ERROR"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&fresh).Error)

	deleted, err := PruneSystemLogs(db, 30, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}

func TestStartRetention(t *testing.T) {
	db := databasetest.New(t)
	c, err := StartRetention(db, 30)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
