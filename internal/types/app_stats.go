package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// AppStats is a singleton row. It is seeded once (daily streak starts at 1)
// and afterwards only touched through atomic UPDATEs in the repo layer, never
// through load-then-save.
type AppStats struct {
  ID               uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
  DailyStreak      int          `gorm:"not null;default:0;column:daily_streak" json:"daily_streak"`
  JournalStreak    int          `gorm:"not null;default:0;column:journal_streak" json:"journal_streak"`
  ExerciseStreak   int          `gorm:"not null;default:0;column:exercise_streak" json:"exercise_streak"`
  LastJournalDate  *time.Time   `gorm:"column:last_journal_date" json:"last_journal_date"`
  LastExerciseDate *time.Time   `gorm:"column:last_exercise_date" json:"last_exercise_date"`
  CreatedAt        time.Time    `gorm:"not null" json:"created_at"`
  UpdatedAt        time.Time    `gorm:"not null" json:"updated_at"`
}

func (AppStats) TableName() string {
  return "app_stats"
}

func (s *AppStats) BeforeCreate(tx *gorm.DB) error {
  if s.ID == uuid.Nil {
    s.ID = uuid.New()
  }
  return nil
}
