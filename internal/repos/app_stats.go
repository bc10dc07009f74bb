package repos

import (
  "context"
  "errors"
  "time"
  "gorm.io/gorm"
  "github.com/yungbote/aura-backend/internal/logger"
  "github.com/yungbote/aura-backend/internal/types"
)

type AppStatsRepo interface {
  Get(ctx context.Context, tx *gorm.DB) (*types.AppStats, error)
  IncrementJournalStreak(ctx context.Context, tx *gorm.DB, now time.Time) error
  IncrementExerciseStreak(ctx context.Context, tx *gorm.DB, now time.Time) error
}

type appStatsRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAppStatsRepo(db *gorm.DB, baseLog *logger.Logger) AppStatsRepo {
  repoLog := baseLog.With("repo", "AppStatsRepo")
  return &appStatsRepo{db: db, log: repoLog}
}

// Get returns the singleton stats row, seeding the documented defaults
// (daily 1, journal 0, exercise 0) on first access. main calls this once at
// startup so the increments below always have a row to hit.
func (ar *appStatsRepo) Get(ctx context.Context, tx *gorm.DB) (*types.AppStats, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var stats types.AppStats
  err := transaction.WithContext(ctx).First(&stats).Error
  if err == nil {
    return &stats, nil
  }
  if !errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, err
  }

  stats = types.AppStats{DailyStreak: 1, JournalStreak: 0, ExerciseStreak: 0}
  if err := transaction.WithContext(ctx).Create(&stats).Error; err != nil {
    return nil, err
  }
  ar.log.Info("Seeded app stats singleton", "id", stats.ID)
  return &stats, nil
}

// IncrementJournalStreak bumps the counter with a single UPDATE so concurrent
// journal writes cannot lose increments. Reading the row, adding one in
// process, and saving it back would race.
func (ar *appStatsRepo) IncrementJournalStreak(ctx context.Context, tx *gorm.DB, now time.Time) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  stats, err := ar.Get(ctx, tx)
  if err != nil {
    return err
  }

  return transaction.WithContext(ctx).
    Model(&types.AppStats{}).
    Where("id = ?", stats.ID).
    Updates(map[string]interface{}{
      "journal_streak":    gorm.Expr("journal_streak + 1"),
      "last_journal_date": now,
    }).Error
}

// IncrementExerciseStreak mirrors IncrementJournalStreak for the exercise
// counter.
func (ar *appStatsRepo) IncrementExerciseStreak(ctx context.Context, tx *gorm.DB, now time.Time) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  stats, err := ar.Get(ctx, tx)
  if err != nil {
    return err
  }

  return transaction.WithContext(ctx).
    Model(&types.AppStats{}).
    Where("id = ?", stats.ID).
    Updates(map[string]interface{}{
      "exercise_streak":    gorm.Expr("exercise_streak + 1"),
      "last_exercise_date": now,
    }).Error
}
