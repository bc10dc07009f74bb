package services

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/nlp"
	"github.com/yungbote/aura-backend/internal/repos"
	"github.com/yungbote/aura-backend/internal/types"
)

// chatHistoryWindow is how many recent turns feed the synthesizer.
const chatHistoryWindow = 5

// ChatResult is everything the chat endpoint returns. When Emergency is set
// only Message and Resources are populated; no classification or generation
// ran.
type ChatResult struct {
	Emergency     bool
	Message       string
	Resources     []nlp.SupportContact
	Response      string
	Sentiment     nlp.SentimentLabel
	Emotion       nlp.EmotionCategory
	Glyph         string
	ConfidencePct float64
	StressLevel   string
}

type ChatService interface {
	Handle(ctx context.Context, text string) (*ChatResult, error)
	History(ctx context.Context, limit int) ([]*types.ChatMessage, error)
}

type chatService struct {
	log         *logger.Logger
	chatRepo    repos.ChatMessageRepo
	sentiment   *nlp.SentimentClassifier
	emotion     *nlp.EmotionClassifier
	synthesizer *nlp.ResponseSynthesizer
}

func NewChatService(log *logger.Logger, chatRepo repos.ChatMessageRepo, sentiment *nlp.SentimentClassifier, emotion *nlp.EmotionClassifier, synthesizer *nlp.ResponseSynthesizer) ChatService {
	serviceLog := log.With("service", "ChatService")
	return &chatService{
		log:         serviceLog,
		chatRepo:    chatRepo,
		sentiment:   sentiment,
		emotion:     emotion,
		synthesizer: synthesizer,
	}
}

func (cs *chatService) Handle(ctx context.Context, text string) (*ChatResult, error) {
	if nlp.DetectEmergency(text) {
		cs.log.Warn("Emergency language detected, short-circuiting pipeline")
		return &ChatResult{
			Emergency: true,
			Message:   nlp.EmergencyMessage,
			Resources: nlp.EmergencyContacts,
		}, nil
	}

	// The two classifiers hit disjoint result fields, so they run
	// concurrently. Neither can fail: both degrade to local heuristics.
	var (
		sentimentLabel nlp.SentimentLabel
		emotionCat     nlp.EmotionCategory
		emotionGlyph   string
		emotionConf    float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sentimentLabel, _ = cs.sentiment.Classify(gctx, text)
		return nil
	})
	g.Go(func() error {
		emotionCat, emotionGlyph, emotionConf = cs.emotion.Classify(gctx, text)
		return nil
	})
	_ = g.Wait()

	recent, err := cs.chatRepo.GetRecent(ctx, nil, chatHistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	history := make([]nlp.Turn, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, nlp.Turn{Role: recent[i].Role, Content: recent[i].Content})
	}

	response := cs.synthesizer.Synthesize(ctx, text, history)

	userMsg := &types.ChatMessage{
		Content:   text,
		Role:      types.RoleUser,
		Sentiment: string(sentimentLabel),
		Emotion:   fmt.Sprintf("%s %s", emotionCat, emotionGlyph),
	}
	aiMsg := &types.ChatMessage{
		Content: response,
		Role:    types.RoleAI,
	}
	if _, err := cs.chatRepo.Create(ctx, nil, []*types.ChatMessage{userMsg, aiMsg}); err != nil {
		return nil, fmt.Errorf("persist chat turns: %w", err)
	}

	return &ChatResult{
		Response:      response,
		Sentiment:     sentimentLabel,
		Emotion:       emotionCat,
		Glyph:         emotionGlyph,
		ConfidencePct: math.Round(emotionConf*1000) / 10,
		StressLevel:   nlp.StressLevelFor(emotionCat),
	}, nil
}

// History returns up to limit turns in chronological order.
func (cs *chatService) History(ctx context.Context, limit int) ([]*types.ChatMessage, error) {
	recent, err := cs.chatRepo.GetRecent(ctx, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent, nil
}
