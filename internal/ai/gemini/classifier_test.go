package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/careerlink/assistant/internal/intent"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestClassifyIntent(t *testing.T) {
	stub := &stubGenerator{response: `{"intent": "job_search", "confidence": 0.92}`}
	classifier := NewClassifier(stub, zap.NewNop(), 0)

	result, err := classifier.ClassifyIntent(context.Background(), "find me a go job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Intent != intent.JobSearch {
		t.Fatalf("expected job_search, got %s", result.Intent)
	}
	if result.Confidence != 0.92 {
		t.Fatalf("expected confidence 0.92, got %v", result.Confidence)
	}

	if !strings.Contains(stub.lastPrompt, "find me a go job") {
		t.Fatalf("expected message interpolated into prompt")
	}
	if strings.Contains(stub.lastPrompt, "{{MESSAGE}}") {
		t.Fatalf("message placeholder left in prompt")
	}
}

func TestClassifyIntentHandlesCodeBlock(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"intent\": \"greeting\", \"confidence\": \"0.8\"}\n```"}
	classifier := NewClassifier(stub, zap.NewNop(), 0)

	result, err := classifier.ClassifyIntent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Intent != intent.Greeting {
		t.Fatalf("expected greeting, got %s", result.Intent)
	}
	if result.Confidence != 0.8 {
		t.Fatalf("expected coerced confidence 0.8, got %v", result.Confidence)
	}
}

func TestClassifyIntentErrors(t *testing.T) {
	cases := []struct {
		name string
		stub *stubGenerator
	}{
		{name: "generator failure", stub: &stubGenerator{err: errors.New("boom")}},
		{name: "no json in response", stub: &stubGenerator{response: "sorry, I cannot help"}},
		{name: "missing intent", stub: &stubGenerator{response: `{"confidence": 0.5}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			classifier := NewClassifier(tc.stub, zap.NewNop(), 0)
			if _, err := classifier.ClassifyIntent(context.Background(), "hello"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClassifyIntentRejectsEmptyMessage(t *testing.T) {
	classifier := NewClassifier(&stubGenerator{}, zap.NewNop(), 0)
	if _, err := classifier.ClassifyIntent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty message")
	}
}
