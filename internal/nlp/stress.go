package nlp

// ScoreStress maps a (sentiment, emotion) pair to a stress score in [0,100].
// Pure additive model: base 30, +40 for Angry, +50 for Anxious, +20 for
// NEGATIVE sentiment, clamped at 100. The terms are independent, so the same
// inputs always produce the same score.
func ScoreStress(sentiment SentimentLabel, emotion EmotionCategory) float64 {
	score := 30.0
	if emotion == EmotionAngry {
		score += 40
	}
	if emotion == EmotionAnxious {
		score += 50
	}
	if sentiment == SentimentNegative {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}
