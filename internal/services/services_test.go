package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/aura-backend/internal/clients/huggingface"
	"github.com/yungbote/aura-backend/internal/db"
	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func setupTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
	t.Helper()

	log := testLogger(t)

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

// fakeInferenceClient scripts the remote boundary; when err is set every call
// fails and the pipeline exercises its fallbacks.
type fakeInferenceClient struct {
	generated string
	err       error

	sentimentCalls int
	emotionCalls   int
	generateCalls  int
	lastGenerate   huggingface.GenerateRequest
}

func (f *fakeInferenceClient) ClassifySentiment(ctx context.Context, text string) ([]huggingface.Candidate, error) {
	f.sentimentCalls++
	return nil, f.err
}

func (f *fakeInferenceClient) ClassifyEmotion(ctx context.Context, text string) ([]huggingface.Candidate, error) {
	f.emotionCalls++
	return nil, f.err
}

func (f *fakeInferenceClient) Generate(ctx context.Context, req huggingface.GenerateRequest) (string, error) {
	f.generateCalls++
	f.lastGenerate = req
	if f.err != nil {
		return "", f.err
	}
	return f.generated, nil
}

// fakeChatRepo keeps turns in memory, newest first on reads.
type fakeChatRepo struct {
	recent  []*types.ChatMessage
	created []*types.ChatMessage
}

func (f *fakeChatRepo) Create(ctx context.Context, tx *gorm.DB, messages []*types.ChatMessage) ([]*types.ChatMessage, error) {
	f.created = append(f.created, messages...)
	return messages, nil
}

func (f *fakeChatRepo) GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ChatMessage, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}
