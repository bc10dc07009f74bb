package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/aura-backend/internal/logger"
  "github.com/yungbote/aura-backend/internal/types"
)

type ChatMessageRepo interface {
  Create(ctx context.Context, tx *gorm.DB, messages []*types.ChatMessage) ([]*types.ChatMessage, error)
  GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ChatMessage, error)
}

type chatMessageRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
  repoLog := baseLog.With("repo", "ChatMessageRepo")
  return &chatMessageRepo{db: db, log: repoLog}
}

func (cr *chatMessageRepo) Create(ctx context.Context, tx *gorm.DB, messages []*types.ChatMessage) ([]*types.ChatMessage, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(messages) == 0 {
    return []*types.ChatMessage{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&messages).Error; err != nil {
    return nil, err
  }
  return messages, nil
}

// GetRecent returns up to limit messages, newest first. Callers that need
// chronological order reverse the slice themselves.
func (cr *chatMessageRepo) GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ChatMessage, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.ChatMessage
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
