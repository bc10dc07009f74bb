package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/nlp"
	"github.com/yungbote/aura-backend/internal/repos"
	"github.com/yungbote/aura-backend/internal/types"
)

// JournalAnalysis is the analysis block returned after a journal write.
type JournalAnalysis struct {
	Mood    nlp.SentimentLabel
	Emotion nlp.EmotionCategory
	Glyph   string
	Stress  float64
}

type JournalService interface {
	Create(ctx context.Context, content string) (*JournalAnalysis, error)
	List(ctx context.Context) ([]*types.JournalEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type journalService struct {
	db           *gorm.DB
	log          *logger.Logger
	journalRepo  repos.JournalRepo
	appStatsRepo repos.AppStatsRepo
	sentiment    *nlp.SentimentClassifier
	emotion      *nlp.EmotionClassifier
}

func NewJournalService(db *gorm.DB, log *logger.Logger, journalRepo repos.JournalRepo, appStatsRepo repos.AppStatsRepo, sentiment *nlp.SentimentClassifier, emotion *nlp.EmotionClassifier) JournalService {
	serviceLog := log.With("service", "JournalService")
	return &journalService{
		db:           db,
		log:          serviceLog,
		journalRepo:  journalRepo,
		appStatsRepo: appStatsRepo,
		sentiment:    sentiment,
		emotion:      emotion,
	}
}

func (js *journalService) Create(ctx context.Context, content string) (*JournalAnalysis, error) {
	var (
		sentimentLabel nlp.SentimentLabel
		emotionCat     nlp.EmotionCategory
		emotionGlyph   string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sentimentLabel, _ = js.sentiment.Classify(gctx, content)
		return nil
	})
	g.Go(func() error {
		emotionCat, emotionGlyph, _ = js.emotion.Classify(gctx, content)
		return nil
	})
	_ = g.Wait()

	stress := nlp.ScoreStress(sentimentLabel, emotionCat)

	entry := &types.JournalEntry{
		Content:     content,
		Mood:        string(sentimentLabel),
		Emotion:     fmt.Sprintf("%s %s", emotionCat, emotionGlyph),
		StressScore: stress,
	}

	// Entry write and streak bump commit together.
	err := js.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := js.journalRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
		return js.appStatsRepo.IncrementJournalStreak(ctx, tx, time.Now().UTC())
	})
	if err != nil {
		return nil, fmt.Errorf("persist journal entry: %w", err)
	}

	return &JournalAnalysis{
		Mood:    sentimentLabel,
		Emotion: emotionCat,
		Glyph:   emotionGlyph,
		Stress:  stress,
	}, nil
}

func (js *journalService) List(ctx context.Context) ([]*types.JournalEntry, error) {
	return js.journalRepo.ListNewestFirst(ctx, nil)
}

func (js *journalService) Delete(ctx context.Context, id uuid.UUID) error {
	return js.journalRepo.DeleteByID(ctx, nil, id)
}
