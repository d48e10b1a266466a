// Package databasetest opens throwaway migrated SQLite databases for tests.
package databasetest

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a migrated in-memory database that is closed when the test ends.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(context.Background(), db, cfg.DBDriver); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
