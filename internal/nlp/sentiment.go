package nlp

import (
	"context"
	"strings"

	"github.com/yungbote/aura-backend/internal/clients/huggingface"
	"github.com/yungbote/aura-backend/internal/logger"
)

// Positive is checked before negative; a text matching both word lists
// resolves POSITIVE. The tie-break is intentional, not incidental.
var (
	positiveWords = []string{"happy", "good", "great", "excellent", "wonderful", "joy", "smile", "calm", "relax"}
	negativeWords = []string{"sad", "angry", "upset", "bad", "terrible", "stress", "anxious", "worry", "deadline"}
)

// SentimentClassifier labels text polarity, remote-first with a deterministic
// keyword fallback.
type SentimentClassifier struct {
	log *logger.Logger
	hf  huggingface.Client
}

func NewSentimentClassifier(log *logger.Logger, hf huggingface.Client) *SentimentClassifier {
	return &SentimentClassifier{
		log: log.With("component", "SentimentClassifier"),
		hf:  hf,
	}
}

// Classify returns the sentiment label and the model's confidence for it.
// It never returns an error: when the remote service is unavailable it
// degrades to the keyword heuristic.
func (sc *SentimentClassifier) Classify(ctx context.Context, text string) (SentimentLabel, float64) {
	candidates, err := sc.hf.ClassifySentiment(ctx, text)
	if err == nil {
		if top, ok := topCandidate(candidates); ok {
			return SentimentLabel(top.Label), top.Score
		}
	}

	textLower := strings.ToLower(text)
	if containsAny(textLower, positiveWords) {
		return SentimentPositive, 0.8
	}
	if containsAny(textLower, negativeWords) {
		return SentimentNegative, 0.8
	}
	return SentimentNeutral, 0.0
}

// topCandidate picks the max-score candidate. Ties keep the earliest
// candidate in the service's ordering.
func topCandidate(candidates []huggingface.Candidate) (huggingface.Candidate, bool) {
	if len(candidates) == 0 {
		return huggingface.Candidate{}, false
	}
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > top.Score {
			top = c
		}
	}
	return top, true
}
