package nlp

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/yungbote/aura-backend/internal/clients/huggingface"
	"github.com/yungbote/aura-backend/internal/logger"
)

const (
	personaInstruction = "You are Aura, a student mental health guardian. Provide empathetic, actionable support. Detect emotion and suggest practical coping steps. "

	// personaMarker splits generated text that echoes the prompt; only the
	// segment after the last marker is returned.
	personaMarker = "Aura:"

	historyWindow = 5
	historyTurns  = 2
)

// topicBucket carries both the prompt hint and the canned fallback reply for
// one topic. The same ordered scan picks at most one bucket for either use.
type topicBucket struct {
	keywords []string
	hint     string
	reply    string
}

// topicBuckets is evaluated in order, first match wins.
var topicBuckets = []topicBucket{
	{
		keywords: []string{"exam", "grade", "study", "deadline", "test"},
		hint:     "Suggest Pomodoro or focus sessions for academic stress. ",
		reply:    "Academic pressure can feel intense. Take a deep breath. You've prepared for challenges like this before, and you can handle this too.",
	},
	{
		keywords: []string{"anxious", "anxiety", "worried", "panic"},
		hint:     "Suggest breathing exercises (4-7-8 technique). ",
		reply:    "I can feel the weight of those worries. Try to focus on your immediate surroundings—what are three things you can see right now?",
	},
	{
		keywords: []string{"sad", "depressed", "lonely"},
		hint:     "Suggest journaling or grounding exercises. ",
		reply:    "I'm sorry things feel heavy right now. It's okay to feel this way. I'm here to sit with you through this.",
	},
	{
		keywords: []string{"angry", "upset", "mad"},
		hint:     "Suggest a calm release activity or a short walk. ",
		reply:    "It's okay to feel frustrated. Sometimes a quick physical reset—like a short walk or just stretching—can help clear the air.",
	},
	{
		keywords: []string{"tired", "burnout", "exhausted"},
		hint:     "Advise rest and a digital detox. ",
		reply:    "Burnout builds up quietly. Give yourself permission to rest without guilt—your energy is a resource, not a constant.",
	},
}

// genericReplies is the pool used when no topic bucket matches.
var genericReplies = []string{
	"I'm listening closely. Academic life can be a lot to balance, but processing these thoughts is the first step to clarity.",
	"I hear you. Remember that your well-being is just as important as your grades. What's one small thing you can do for yourself right now?",
	"That sounds like a lot to carry. I'm here to listen. Sometimes just getting it out helps release the pressure.",
	"I'm with you. Navigating student life isn't always easy, but you've shown resilience before. Tell me more about what's on your mind.",
	"I'm here. Whether it's study stress or something personal, your feelings are valid. Let's take it one step at a time.",
}

// ResponseSynthesizer builds a context-conditioned prompt, asks the remote
// service for a reply, and degrades to canned empathetic text when the
// service is unavailable.
type ResponseSynthesizer struct {
	log *logger.Logger
	hf  huggingface.Client

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponseSynthesizer takes the randomness source explicitly so tests can
// seed it and pin the generic fallback choice.
func NewResponseSynthesizer(log *logger.Logger, hf huggingface.Client, rng *rand.Rand) *ResponseSynthesizer {
	return &ResponseSynthesizer{
		log: log.With("component", "ResponseSynthesizer"),
		hf:  hf,
		rng: rng,
	}
}

// Synthesize generates an empathetic reply to text given the most recent
// conversation turns. It never returns an error; remote failure selects a
// canned reply.
func (rs *ResponseSynthesizer) Synthesize(ctx context.Context, text string, history []Turn) string {
	prompt := rs.buildPrompt(text)
	pastUser, pastAI := splitHistory(history)

	generated, err := rs.hf.Generate(ctx, huggingface.GenerateRequest{
		PastUserInputs:     pastUser,
		GeneratedResponses: pastAI,
		Text:               prompt,
	})
	if err == nil {
		if idx := strings.LastIndex(generated, personaMarker); idx >= 0 {
			generated = generated[idx+len(personaMarker):]
		}
		return strings.TrimSpace(generated)
	}

	textLower := strings.ToLower(text)
	for _, bucket := range topicBuckets {
		if containsAny(textLower, bucket.keywords) {
			return bucket.reply
		}
	}

	rs.mu.Lock()
	reply := genericReplies[rs.rng.Intn(len(genericReplies))]
	rs.mu.Unlock()
	return reply
}

func (rs *ResponseSynthesizer) buildPrompt(text string) string {
	contextHint := ""
	textLower := strings.ToLower(text)
	for _, bucket := range topicBuckets {
		if containsAny(textLower, bucket.keywords) {
			contextHint = bucket.hint
			break
		}
	}
	return fmt.Sprintf("%s%sUser: %s\n%s", personaInstruction, contextHint, text, personaMarker)
}

// splitHistory extracts the most recent historyTurns user contents and ai
// contents independently; the two sides are not interleaved.
func splitHistory(history []Turn) (pastUser []string, pastAI []string) {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		switch turn.Role {
		case "user":
			pastUser = append(pastUser, turn.Content)
		case "ai":
			pastAI = append(pastAI, turn.Content)
		}
	}
	if len(pastUser) > historyTurns {
		pastUser = pastUser[len(pastUser)-historyTurns:]
	}
	if len(pastAI) > historyTurns {
		pastAI = pastAI[len(pastAI)-historyTurns:]
	}
	return pastUser, pastAI
}
