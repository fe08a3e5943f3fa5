package gemini

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/careerlink/assistant/internal/intent"
	"github.com/careerlink/assistant/internal/jsonutil"
	"github.com/careerlink/assistant/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Classifier asks Gemini to classify a message into one of the platform
// intents. Failures are returned to the caller; the resolver decides whether
// to fall back.
type Classifier struct {
	generator contentGenerator
	extractor *jsonutil.Extractor
	logger    *zap.Logger
	maxLogLen int
}

func NewClassifier(generator contentGenerator, log *zap.Logger, maxLogLength int) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Classifier{
		generator: generator,
		extractor: jsonutil.NewExtractor(log),
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// ClassifyIntent sends the message to Gemini and parses the JSON verdict.
func (c *Classifier) ClassifyIntent(ctx context.Context, message string) (intent.Classification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return intent.Classification{}, fmt.Errorf("message must not be empty")
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{MESSAGE}}", message)

	c.logger.Debug("gemini classify request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return intent.Classification{}, err
	}

	c.logger.Debug("gemini classify response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, c.maxLogLen)),
	)

	data := c.extractor.Object(raw)
	if data == nil {
		return intent.Classification{}, fmt.Errorf("parse gemini classification: no json object in response")
	}

	name := coerceString(data["intent"])
	if name == "" {
		return intent.Classification{}, fmt.Errorf("gemini classification has no intent")
	}

	confidence := coerceFloat(data["confidence"])
	if math.IsNaN(confidence) {
		confidence = 0
	}

	return intent.Classification{
		Intent:     intent.Intent(name),
		Confidence: confidence,
	}, nil
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	default:
		return ""
	}
}
