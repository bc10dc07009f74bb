package db

import (
  "fmt"
  "strings"
  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/yungbote/aura-backend/internal/logger"
  "github.com/yungbote/aura-backend/internal/types"
  "github.com/yungbote/aura-backend/internal/utils"
)

type DatabaseService struct {
  db  *gorm.DB
  log *logger.Logger
}

// NewDatabaseService connects using DB_DRIVER ("sqlite" by default, "postgres"
// for the deployed setup) and returns the shared service handle.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
  serviceLog := log.With("service", "DatabaseService")

  driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "sqlite", log))

  var dialector gorm.Dialector
  switch driver {
  case "postgres":
    postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
    postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
    postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
    postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
    postgresName := utils.GetEnv("POSTGRES_NAME", "aura", log)
    dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)
    dialector = postgres.Open(dsn)
  case "sqlite":
    sqlitePath := utils.GetEnv("SQLITE_PATH", "aura.db", log)
    dialector = sqlite.Open(sqlitePath)
  default:
    return nil, fmt.Errorf("unknown DB_DRIVER %q (want postgres or sqlite)", driver)
  }

  log.Info("Connecting to database...", "driver", driver)
  theDB, err := gorm.Open(dialector, &gorm.Config{})
  if err != nil {
    serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
    return nil, fmt.Errorf("failed to connect to database: %w", err)
  }

  return &DatabaseService{db: theDB, log: serviceLog}, nil
}

// NewDatabaseServiceWithDialector is the test seam: callers hand in an
// in-memory sqlite dialector.
func NewDatabaseServiceWithDialector(dialector gorm.Dialector, log *logger.Logger) (*DatabaseService, error) {
  theDB, err := gorm.Open(dialector, &gorm.Config{})
  if err != nil {
    return nil, fmt.Errorf("failed to connect to database: %w", err)
  }
  return &DatabaseService{db: theDB, log: log.With("service", "DatabaseService")}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
  s.log.Info("Auto migrating tables...")
  err := s.db.AutoMigrate(
    &types.JournalEntry{},
    &types.ChatMessage{},
    &types.AppStats{},
  )
  if err != nil {
    s.log.Error("Auto migration failed", "error", err)
    return err
  }
  return nil
}

func (s *DatabaseService) DB() *gorm.DB {
  return s.db
}
