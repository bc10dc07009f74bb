package nlp

import (
	"context"
	"testing"

	"github.com/yungbote/aura-backend/internal/clients/huggingface"
)

func TestEmotionRemoteMapping(t *testing.T) {
	cases := []struct {
		name      string
		label     string
		wantCat   EmotionCategory
		wantGlyph string
	}{
		{name: "joy", label: "joy", wantCat: EmotionHappy, wantGlyph: "😊"},
		{name: "fear", label: "fear", wantCat: EmotionAnxious, wantGlyph: "😰"},
		{name: "annoyance", label: "annoyance", wantCat: EmotionAngry, wantGlyph: "😡"},
		{name: "confusion", label: "confusion", wantCat: EmotionStressed, wantGlyph: "😓"},
		// pride has a category but no glyph of its own
		{name: "pride_default_glyph", label: "pride", wantCat: EmotionCalm, wantGlyph: "😌"},
		// labels outside both tables default entirely
		{name: "unmapped_label", label: "surprise", wantCat: EmotionCalm, wantGlyph: "😌"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeInferenceClient{
				emotionCandidates: []huggingface.Candidate{{Label: tc.label, Score: 0.91}},
			}
			ec := NewEmotionClassifier(testLogger(t), fake)
			cat, glyph, conf := ec.Classify(context.Background(), "whatever")
			if cat != tc.wantCat || glyph != tc.wantGlyph {
				t.Fatalf("label %q mapped to (%s,%s), want (%s,%s)", tc.label, cat, glyph, tc.wantCat, tc.wantGlyph)
			}
			if conf != 0.91 {
				t.Fatalf("confidence should pass through, got %v", conf)
			}
		})
	}
}

func TestEmotionRemotePicksMaxScore(t *testing.T) {
	fake := &fakeInferenceClient{
		emotionCandidates: []huggingface.Candidate{
			{Label: "sadness", Score: 0.3},
			{Label: "anger", Score: 0.6},
			{Label: "joy", Score: 0.1},
		},
	}
	ec := NewEmotionClassifier(testLogger(t), fake)
	cat, glyph, _ := ec.Classify(context.Background(), "whatever")
	if cat != EmotionAngry || glyph != "😡" {
		t.Fatalf("got (%s,%s), want (Angry,😡)", cat, glyph)
	}
}

func TestEmotionFallbackOrdering(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		wantCat   EmotionCategory
		wantGlyph string
		wantConf  float64
	}{
		{
			// both a happy and a sad keyword: Happy wins by bucket order
			name:      "happy_precedes_sad",
			text:      "a wonderful day but I still cry sometimes",
			wantCat:   EmotionHappy,
			wantGlyph: "😊",
			wantConf:  0.8,
		},
		{
			name:      "sad_precedes_anxious",
			text:      "I feel lonely and scared",
			wantCat:   EmotionSad,
			wantGlyph: "😔",
			wantConf:  0.8,
		},
		{
			name:      "anxious_precedes_angry",
			text:      "worry and being mad at everyone",
			wantCat:   EmotionAnxious,
			wantGlyph: "😰",
			wantConf:  0.8,
		},
		{
			name:      "stressed_last",
			text:      "completely overwhelmed",
			wantCat:   EmotionStressed,
			wantGlyph: "😓",
			wantConf:  0.8,
		},
		{
			name:      "no_match_calm",
			text:      "the bus arrives at nine",
			wantCat:   EmotionCalm,
			wantGlyph: "😌",
			wantConf:  0.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeInferenceClient{err: huggingface.ErrServiceUnavailable}
			ec := NewEmotionClassifier(testLogger(t), fake)
			cat, glyph, conf := ec.Classify(context.Background(), tc.text)
			if cat != tc.wantCat || glyph != tc.wantGlyph || conf != tc.wantConf {
				t.Fatalf("Classify(%q)=(%s,%s,%v), want (%s,%s,%v)", tc.text, cat, glyph, conf, tc.wantCat, tc.wantGlyph, tc.wantConf)
			}
		})
	}
}
