// Package ai defines the optional remote capabilities the assistant can use
// and the resolver that falls back to local classification when they are
// absent or failing.
package ai

import (
	"context"

	"github.com/careerlink/assistant/internal/intent"
	"github.com/careerlink/assistant/internal/jobs"
)

// IntentClassifier is the optional remote classification capability.
// Absence is represented by a nil implementation, never by probing the
// collaborator's shape at call time.
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, message string) (intent.Classification, error)
}

// Generator is the remote free-form generation capability. Both operations
// absorb their own failures: Generate substitutes a user-safe apology and
// ExtractSearchIntent returns empty filters.
type Generator interface {
	Generate(ctx context.Context, prompt string, facts map[string]any) string
	ExtractSearchIntent(ctx context.Context, prompt string) jobs.SearchFilters
}
