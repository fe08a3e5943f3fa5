// Package jsonutil recovers JSON objects embedded in unstructured text.
// Language models routinely wrap their JSON in prose or markdown fencing;
// the extractor tolerates both instead of failing the request.
package jsonutil

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Object returns the first JSON object found in text, or nil when none can
// be recovered. It never panics and never returns an error.
func (e *Extractor) Object(text string) map[string]any {
	span, ok := objectSpan(text)
	if !ok {
		return nil
	}

	var object map[string]any
	if err := json.Unmarshal([]byte(span), &object); err != nil {
		e.logger.Warn("failed to parse embedded json", zap.Error(err))
		return nil
	}

	return object
}

// Decode unmarshals the first JSON object found in text into v. It reports
// whether decoding succeeded; on failure v is left untouched apart from
// whatever encoding/json wrote before erroring.
func (e *Extractor) Decode(text string, v any) bool {
	span, ok := objectSpan(text)
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(span), v); err != nil {
		e.logger.Warn("failed to decode embedded json", zap.Error(err))
		return false
	}

	return true
}

// objectSpan locates the first '{' through the last '}'. This is a greedy
// span, not a balanced parse; json.Unmarshal decides whether it is valid.
func objectSpan(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}

	return text[start : end+1], true
}
