package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

const (
  RoleUser = "user"
  RoleAI   = "ai"
)

// ChatMessage is a single conversation turn. Only user turns carry
// sentiment/emotion labels; ai turns leave both empty.
type ChatMessage struct {
  ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Content   string      `gorm:"type:text;not null;column:content" json:"content"`
  Role      string      `gorm:"not null;column:role" json:"role"`
  Sentiment string      `gorm:"column:sentiment" json:"sentiment"`
  Emotion   string      `gorm:"column:emotion" json:"emotion"`
  CreatedAt time.Time   `gorm:"not null;index" json:"created_at"`
}

func (ChatMessage) TableName() string {
  return "chat_message"
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
  if m.ID == uuid.Nil {
    m.ID = uuid.New()
  }
  return nil
}
