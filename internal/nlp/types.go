package nlp

// SentimentLabel is the polarity of a piece of text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// EmotionCategory is the coarse taxonomy every fine-grained classifier label
// maps into.
type EmotionCategory string

const (
	EmotionHappy    EmotionCategory = "Happy"
	EmotionCalm     EmotionCategory = "Calm"
	EmotionSad      EmotionCategory = "Sad"
	EmotionAnxious  EmotionCategory = "Anxious"
	EmotionAngry    EmotionCategory = "Angry"
	EmotionStressed EmotionCategory = "Stressed"
)

// Turn is one conversation turn handed to the synthesizer as context.
type Turn struct {
	Role    string
	Content string
}

// AffectReading is the combined output of both classifiers for one input.
// It is flattened into journal/chat rows, never stored on its own.
type AffectReading struct {
	Label      SentimentLabel
	Score      float64
	Category   EmotionCategory
	Glyph      string
	Confidence float64
}

// StressLevelFor buckets an emotion category into the coarse level shown to
// chat clients.
func StressLevelFor(category EmotionCategory) string {
	switch category {
	case EmotionAngry, EmotionAnxious, EmotionStressed:
		return "High"
	case EmotionSad:
		return "Medium"
	default:
		return "Low"
	}
}
