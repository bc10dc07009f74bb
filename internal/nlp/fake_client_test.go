package nlp

import (
	"context"

	"github.com/yungbote/aura-backend/internal/clients/huggingface"
	"github.com/yungbote/aura-backend/internal/logger"
)

// fakeInferenceClient scripts the remote boundary and records every call so
// tests can assert the pipeline short-circuits where it must.
type fakeInferenceClient struct {
	sentimentCandidates []huggingface.Candidate
	emotionCandidates   []huggingface.Candidate
	generated           string
	err                 error

	sentimentCalls int
	emotionCalls   int
	generateCalls  int
	lastGenerate   huggingface.GenerateRequest
}

func (f *fakeInferenceClient) ClassifySentiment(ctx context.Context, text string) ([]huggingface.Candidate, error) {
	f.sentimentCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sentimentCandidates, nil
}

func (f *fakeInferenceClient) ClassifyEmotion(ctx context.Context, text string) ([]huggingface.Candidate, error) {
	f.emotionCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.emotionCandidates, nil
}

func (f *fakeInferenceClient) Generate(ctx context.Context, req huggingface.GenerateRequest) (string, error) {
	f.generateCalls++
	f.lastGenerate = req
	if f.err != nil {
		return "", f.err
	}
	return f.generated, nil
}

func testLogger(t interface{ Fatalf(string, ...interface{}) }) *logger.Logger {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}
