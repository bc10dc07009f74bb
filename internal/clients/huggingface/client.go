package huggingface

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	rediscache "github.com/yungbote/aura-backend/internal/clients/redis"
	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/utils"
)

// ErrServiceUnavailable covers every way a remote call can fail: missing
// token, transport error, non-2xx status, timeout, or a body that does not
// decode. Callers treat all of them the same and switch to their local
// fallback; nothing else ever escapes this package.
var ErrServiceUnavailable = errors.New("inference service unavailable")

// Candidate is one {label, score} pair from a classification endpoint.
// Candidates are returned in the service's own ordering.
type Candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// GenerateRequest carries the bounded conversational context for the
// generation endpoint: at most the last two user inputs and the last two
// generated responses, plus the full prompt.
type GenerateRequest struct {
	PastUserInputs     []string
	GeneratedResponses []string
	Text               string
}

// Client is the uniform boundary to the hosted inference service. One call,
// one attempt, fixed timeout; no retries.
type Client interface {
	ClassifySentiment(ctx context.Context, text string) ([]Candidate, error)
	ClassifyEmotion(ctx context.Context, text string) ([]Candidate, error)
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

type client struct {
	log            *logger.Logger
	baseURL        string
	token          string
	sentimentModel string
	emotionModel   string
	chatModel      string
	httpClient     *http.Client
	cache          rediscache.Cache
}

func NewClient(log *logger.Logger, cache rediscache.Cache) Client {
	clientLog := log.With("client", "HuggingFaceClient")

	token := strings.TrimSpace(utils.GetEnv("HF_TOKEN", "", log))
	if token == "" {
		clientLog.Warn("HF_TOKEN is not set; all inference calls will fall back to local heuristics")
	}

	baseURL := strings.TrimRight(utils.GetEnv("HF_BASE_URL", "https://api-inference.huggingface.co/models", log), "/")
	sentimentModel := utils.GetEnv("HF_SENTIMENT_MODEL", "distilbert-base-uncased-finetuned-sst-2-english", log)
	emotionModel := utils.GetEnv("HF_EMOTION_MODEL", "SamLowe/roberta-base-go_emotions", log)
	chatModel := utils.GetEnv("HF_CHAT_MODEL", "microsoft/DialoGPT-medium", log)
	timeoutSeconds := utils.GetEnvAsInt("HF_TIMEOUT_SECONDS", 20, log)

	return &client{
		log:            clientLog,
		baseURL:        baseURL,
		token:          token,
		sentimentModel: sentimentModel,
		emotionModel:   emotionModel,
		chatModel:      chatModel,
		httpClient:     &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		cache:          cache,
	}
}

type requestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type classifyRequest struct {
	Inputs  string         `json:"inputs"`
	Options requestOptions `json:"options"`
}

type generateInputs struct {
	PastUserInputs     []string `json:"past_user_inputs"`
	GeneratedResponses []string `json:"generated_responses"`
	Text               string   `json:"text"`
}

type generateParameters struct {
	MaxNewTokens      int     `json:"max_new_tokens"`
	TopP              float64 `json:"top_p"`
	Temperature       float64 `json:"temperature"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

type generateRequestBody struct {
	Inputs     generateInputs     `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
	Options    requestOptions     `json:"options"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (c *client) ClassifySentiment(ctx context.Context, text string) ([]Candidate, error) {
	return c.classify(ctx, c.sentimentModel, text)
}

func (c *client) ClassifyEmotion(ctx context.Context, text string) ([]Candidate, error) {
	return c.classify(ctx, c.emotionModel, text)
}

func (c *client) classify(ctx context.Context, model string, text string) ([]Candidate, error) {
	cacheKey := classifyCacheKey(model, text)
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, cacheKey); ok {
			if candidates, err := decodeCandidates(raw); err == nil {
				return candidates, nil
			}
		}
	}

	raw, err := c.doOnce(ctx, model, classifyRequest{
		Inputs:  text,
		Options: requestOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, err
	}

	candidates, err := decodeCandidates(raw)
	if err != nil {
		c.log.Warn("Malformed classification response", "model", model, "error", err)
		return nil, ErrServiceUnavailable
	}

	if c.cache != nil {
		c.cache.Set(ctx, cacheKey, raw, 10*time.Minute)
	}
	return candidates, nil
}

func (c *client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	raw, err := c.doOnce(ctx, c.chatModel, generateRequestBody{
		Inputs: generateInputs{
			PastUserInputs:     req.PastUserInputs,
			GeneratedResponses: req.GeneratedResponses,
			Text:               req.Text,
		},
		Parameters: generateParameters{
			MaxNewTokens:      150,
			TopP:              0.95,
			Temperature:       0.8,
			RepetitionPenalty: 1.1,
		},
		Options: requestOptions{WaitForModel: true},
	})
	if err != nil {
		return "", err
	}

	// The conversational pipeline answers with an object; the plain
	// text-generation pipeline wraps the same object in a one-element array.
	var single generateResponse
	if err := json.Unmarshal(raw, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText, nil
	}
	var many []generateResponse
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 && many[0].GeneratedText != "" {
		return many[0].GeneratedText, nil
	}

	c.log.Warn("Malformed generation response", "model", c.chatModel)
	return "", ErrServiceUnavailable
}

// doOnce performs exactly one POST against the model endpoint and normalizes
// every failure mode to ErrServiceUnavailable.
func (c *client) doOnce(ctx context.Context, model string, body any) ([]byte, error) {
	if c.token == "" {
		c.log.Error("HF_TOKEN is missing; cannot call inference service", "model", model)
		return nil, ErrServiceUnavailable
	}

	payload, err := json.Marshal(body)
	if err != nil {
		c.log.Error("Failed to encode inference request", "model", model, "error", err)
		return nil, ErrServiceUnavailable
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.log.Error("Failed to build inference request", "model", model, "error", err)
		return nil, ErrServiceUnavailable
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Inference request failed", "model", model, "error", err)
		return nil, ErrServiceUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Failed to read inference response", "model", model, "error", err)
		return nil, ErrServiceUnavailable
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Inference service returned non-success status", "model", model, "status", resp.StatusCode, "body", truncate(string(raw), 200))
		return nil, ErrServiceUnavailable
	}
	return raw, nil
}

// decodeCandidates accepts both shapes the classification endpoints produce:
// a flat [{label,score}...] and the doubly-nested [[{label,score}...]].
func decodeCandidates(raw []byte) ([]Candidate, error) {
	var flat []Candidate
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 && flat[0].Label != "" {
		return flat, nil
	}
	var nested [][]Candidate
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}
	return nil, fmt.Errorf("no candidates in response")
}

func classifyCacheKey(model string, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("hf:%s:%s", model, hex.EncodeToString(sum[:]))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
