package ai

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/careerlink/assistant/internal/intent"
)

type stubClassifier struct {
	result intent.Classification
	err    error
	calls  int
}

func (s *stubClassifier) ClassifyIntent(_ context.Context, _ string) (intent.Classification, error) {
	s.calls++
	if s.err != nil {
		return intent.Classification{}, s.err
	}
	return s.result, nil
}

func TestResolveWithoutRemoteUsesKeywords(t *testing.T) {
	t.Parallel()

	keyword := intent.NewClassifier(intent.DefaultLexicon())
	resolver := NewResolver(keyword, nil, zap.NewNop())

	message := "hello there"
	got := resolver.Resolve(context.Background(), message)
	want := keyword.Classify(message)

	if got != want {
		t.Fatalf("expected keyword result %+v, got %+v", want, got)
	}
}

func TestResolveUsesRemoteResultVerbatim(t *testing.T) {
	t.Parallel()

	remote := &stubClassifier{result: intent.Classification{Intent: intent.JobSearch, Confidence: 1.0}}
	keyword := intent.NewClassifier(intent.DefaultLexicon())
	resolver := NewResolver(keyword, remote, zap.NewNop())

	got := resolver.Resolve(context.Background(), "anything")
	if got.Intent != intent.JobSearch {
		t.Fatalf("expected remote intent, got %s", got.Intent)
	}
	// Remote confidence is trusted without reclamping.
	if got.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %v", got.Confidence)
	}
	if remote.calls != 1 {
		t.Fatalf("expected one remote call, got %d", remote.calls)
	}
}

func TestResolveFallsBackOnRemoteError(t *testing.T) {
	t.Parallel()

	remote := &stubClassifier{err: errors.New("timeout")}
	keyword := intent.NewClassifier(intent.DefaultLexicon())
	resolver := NewResolver(keyword, remote, zap.NewNop())

	message := "any vacancies for go developers?"
	got := resolver.Resolve(context.Background(), message)
	want := keyword.Classify(message)

	if got != want {
		t.Fatalf("expected fallback result %+v, got %+v", want, got)
	}
}

func TestResolveFallsBackOnEmptyRemoteIntent(t *testing.T) {
	t.Parallel()

	remote := &stubClassifier{result: intent.Classification{Confidence: 0.9}}
	keyword := intent.NewClassifier(intent.DefaultLexicon())
	resolver := NewResolver(keyword, remote, zap.NewNop())

	got := resolver.Resolve(context.Background(), "hello there")
	if got.Intent != intent.Greeting {
		t.Fatalf("expected keyword fallback, got %s", got.Intent)
	}
}
