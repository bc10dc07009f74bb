package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/aura-backend/internal/logger"
  "github.com/yungbote/aura-backend/internal/types"
)

type JournalRepo interface {
  Create(ctx context.Context, tx *gorm.DB, entry *types.JournalEntry) (*types.JournalEntry, error)
  ListNewestFirst(ctx context.Context, tx *gorm.DB) ([]*types.JournalEntry, error)
  ListChronological(ctx context.Context, tx *gorm.DB) ([]*types.JournalEntry, error)
  DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type journalRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewJournalRepo(db *gorm.DB, baseLog *logger.Logger) JournalRepo {
  repoLog := baseLog.With("repo", "JournalRepo")
  return &journalRepo{db: db, log: repoLog}
}

func (jr *journalRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.JournalEntry) (*types.JournalEntry, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
    return nil, err
  }
  return entry, nil
}

func (jr *journalRepo) ListNewestFirst(ctx context.Context, tx *gorm.DB) ([]*types.JournalEntry, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var results []*types.JournalEntry
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (jr *journalRepo) ListChronological(ctx context.Context, tx *gorm.DB) ([]*types.JournalEntry, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var results []*types.JournalEntry
  if err := transaction.WithContext(ctx).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (jr *journalRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.JournalEntry{})
  if result.Error != nil {
    if errors.Is(result.Error, gorm.ErrRecordNotFound) {
      return ErrNotFound
    }
    return result.Error
  }
  if result.RowsAffected == 0 {
    return ErrNotFound
  }
  return nil
}
