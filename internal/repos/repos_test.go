package repos

import (
  "fmt"
  "testing"
  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/yungbote/aura-backend/internal/db"
  "github.com/yungbote/aura-backend/internal/logger"
)

// setupTestDB opens a private in-memory database per test. A single pooled
// connection keeps sqlite from returning busy errors under the concurrency
// tests.
func setupTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
  t.Helper()

  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }

  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
  dbService, err := db.NewDatabaseServiceWithDialector(sqlite.Open(dsn), log)
  if err != nil {
    t.Fatalf("open test db: %v", err)
  }
  if err := dbService.AutoMigrateAll(); err != nil {
    t.Fatalf("automigrate: %v", err)
  }

  theDB := dbService.DB()
  sqlDB, err := theDB.DB()
  if err != nil {
    t.Fatalf("raw db handle: %v", err)
  }
  sqlDB.SetMaxOpenConns(1)

  return theDB, log
}
