package nlp

import (
	"context"
	"strings"

	"github.com/yungbote/aura-backend/internal/clients/huggingface"
	"github.com/yungbote/aura-backend/internal/logger"
)

const (
	defaultGlyph = "😌"
)

// categoryByLabel maps the fine-grained go_emotions labels into the coarse
// taxonomy. Labels missing here fall back to Calm.
var categoryByLabel = map[string]EmotionCategory{
	"joy": EmotionHappy, "amusement": EmotionHappy, "optimism": EmotionHappy,
	"approval": EmotionCalm, "caring": EmotionCalm, "gratitude": EmotionCalm, "relief": EmotionCalm, "pride": EmotionCalm,
	"sadness": EmotionSad, "disappointment": EmotionSad, "grief": EmotionSad, "remorse": EmotionSad,
	"fear": EmotionAnxious, "nervousness": EmotionAnxious,
	"anger": EmotionAngry, "annoyance": EmotionAngry, "disapproval": EmotionAngry,
	"confusion": EmotionStressed, "disgust": EmotionStressed,
}

// glyphByLabel is the display glyph per fine-grained label; missing labels
// fall back to 😌. The two tables are kept separate because their key sets
// differ (e.g. "pride" has a category but no glyph of its own).
var glyphByLabel = map[string]string{
	"joy": "😊", "amusement": "😊", "approval": "😌", "caring": "😌",
	"gratitude": "😌", "optimism": "😊", "relief": "😌", "sadness": "😔",
	"disappointment": "😔", "grief": "😔", "remorse": "😔", "fear": "😰",
	"nervousness": "😰", "anger": "😡", "annoyance": "😡", "disapproval": "😡",
	"stress": "😓", "confusion": "😓",
}

// emotionFallbackRules is evaluated in order, first match wins. The order
// matters because the keyword sets can overlap with the input; Happy is
// checked before Sad and so on down to Stressed.
var emotionFallbackRules = []keywordRule{
	{keywords: []string{"happy", "joy", "great", "wonderful"}, category: EmotionHappy, glyph: "😊"},
	{keywords: []string{"sad", "lonely", "hurt", "cry"}, category: EmotionSad, glyph: "😔"},
	{keywords: []string{"anxious", "worry", "scared", "fear"}, category: EmotionAnxious, glyph: "😰"},
	{keywords: []string{"angry", "mad", "upset", "annoy"}, category: EmotionAngry, glyph: "😡"},
	{keywords: []string{"stress", "overwhelmed", "deadline"}, category: EmotionStressed, glyph: "😓"},
}

// EmotionClassifier labels text with a coarse emotion category plus display
// glyph, remote-first with an ordered keyword fallback.
type EmotionClassifier struct {
	log *logger.Logger
	hf  huggingface.Client
}

func NewEmotionClassifier(log *logger.Logger, hf huggingface.Client) *EmotionClassifier {
	return &EmotionClassifier{
		log: log.With("component", "EmotionClassifier"),
		hf:  hf,
	}
}

// Classify never returns an error; remote failure degrades to the keyword
// rules above.
func (ec *EmotionClassifier) Classify(ctx context.Context, text string) (EmotionCategory, string, float64) {
	candidates, err := ec.hf.ClassifyEmotion(ctx, text)
	if err == nil {
		if top, ok := topCandidate(candidates); ok {
			category, found := categoryByLabel[top.Label]
			if !found {
				category = EmotionCalm
			}
			glyph, found := glyphByLabel[top.Label]
			if !found {
				glyph = defaultGlyph
			}
			return category, glyph, top.Score
		}
	}

	textLower := strings.ToLower(text)
	for _, rule := range emotionFallbackRules {
		if containsAny(textLower, rule.keywords) {
			return rule.category, rule.glyph, 0.8
		}
	}
	return EmotionCalm, defaultGlyph, 0.0
}
