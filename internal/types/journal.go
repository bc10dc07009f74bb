package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// JournalEntry is immutable once written, except for deletion. Mood holds the
// sentiment label (POSITIVE/NEGATIVE/NEUTRAL); Emotion holds the composite
// "Category glyph" display label, e.g. "Anxious 😰".
type JournalEntry struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Content     string      `gorm:"type:text;not null;column:content" json:"content"`
  Mood        string      `gorm:"column:mood" json:"mood"`
  Emotion     string      `gorm:"column:emotion" json:"emotion"`
  StressScore float64     `gorm:"column:stress_score" json:"stress_score"`
  CreatedAt   time.Time   `gorm:"not null;index" json:"created_at"`
}

func (JournalEntry) TableName() string {
  return "journal_entry"
}

func (j *JournalEntry) BeforeCreate(tx *gorm.DB) error {
  if j.ID == uuid.Nil {
    j.ID = uuid.New()
  }
  return nil
}
