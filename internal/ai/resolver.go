package ai

import (
	"context"

	"go.uber.org/zap"

	"github.com/careerlink/assistant/internal/intent"
)

// Resolver classifies messages through the remote capability when one is
// configured, falling back to keyword classification on absence or failure.
// Intent classification never fails outright: Resolve always returns a
// usable classification.
type Resolver struct {
	keyword *intent.Classifier
	remote  IntentClassifier
	logger  *zap.Logger
}

// NewResolver builds a resolver. remote may be nil when no remote
// classification capability is available.
func NewResolver(keyword *intent.Classifier, remote IntentClassifier, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{keyword: keyword, remote: remote, logger: logger}
}

// Resolve returns the classification for the message. A remote result with a
// non-empty intent is used verbatim, trusting the remote confidence without
// reclamping.
func (r *Resolver) Resolve(ctx context.Context, message string) intent.Classification {
	if r.remote == nil {
		return r.keyword.Classify(message)
	}

	result, err := r.remote.ClassifyIntent(ctx, message)
	if err != nil {
		r.logger.Warn("remote intent classification failed, falling back to keywords",
			zap.Error(err),
		)
		return r.keyword.Classify(message)
	}

	if result.Intent == "" {
		r.logger.Warn("remote classifier returned empty intent, falling back to keywords")
		return r.keyword.Classify(message)
	}

	return result
}
