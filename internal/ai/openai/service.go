// Package openai implements the remote generation service on top of an
// OpenAI-compatible chat-completion endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/careerlink/assistant/internal/jobs"
	"github.com/careerlink/assistant/internal/jsonutil"
	"github.com/careerlink/assistant/internal/logger"
)

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 500

	generateTemperature = 0.7
	generateTimeout     = 30 * time.Second

	extractTemperature = 0.1
	extractMaxTokens   = 300
	extractTimeout     = 15 * time.Second

	// ApologyMessage replaces the reply on any transport or API failure.
	// Raw provider errors are logged, never shown to the user.
	ApologyMessage = "I'm sorry, I'm having trouble answering right now. Please try again in a moment."
)

const extractInstruction = `Extract job search parameters from the user message.
Respond with only a JSON object, no prose and no markdown, using exactly these keys
(omit a key when the user did not mention it):
{"skills": [string], "locations": [string],
 "jobTypes": ["full-time"|"part-time"|"contract"|"freelance"|"remote"],
 "experienceLevel": "entry"|"mid"|"senior"|"any",
 "salaryRange": {"min": number, "max": number},
 "industries": [string], "companies": [string]}`

// chatCompleter is the slice of the OpenAI client the service uses.
// *openai.Client satisfies it.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service wraps chat-completion calls for free-form answers and structured
// search-parameter extraction. It owns error translation: callers never see
// transport failures.
type Service struct {
	client    chatCompleter
	model     string
	maxTokens int
	extractor *jsonutil.Extractor
	logger    *zap.Logger
	maxLogLen int
}

// NewService creates a Service backed by the OpenAI API.
func NewService(apiKey, model string, maxTokens, maxLogLength int, log *zap.Logger) (*Service, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	return newService(openai.NewClient(apiKey), model, maxTokens, maxLogLength, log), nil
}

func newService(client chatCompleter, model string, maxTokens, maxLogLength int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if maxLogLength <= 0 {
		maxLogLength = 200
	}

	return &Service{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		extractor: jsonutil.NewExtractor(log),
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// platformFacts is the typed portion of the generation context. Unknown keys
// are collected into Extra and rendered as-is.
type platformFacts struct {
	PlatformName string         `mapstructure:"platform_name"`
	Founded      string         `mapstructure:"founded"`
	Features     []string       `mapstructure:"features"`
	Extra        map[string]any `mapstructure:",remain"`
}

// Generate sends the prompt with a persona built from the platform facts and
// returns the completion text. On any failure it returns ApologyMessage;
// Generate itself never fails.
func (s *Service) Generate(ctx context.Context, prompt string, facts map[string]any) string {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text, err := s.complete(ctx, buildSystemInstruction(facts), prompt, generateTemperature, s.maxTokens)
	if err != nil {
		s.logger.Warn("remote generation failed", zap.Error(err))
		return ApologyMessage
	}
	return text
}

// ExtractSearchIntent asks the model for a structured search filter. On any
// transport or parse failure it returns empty filters; every field is
// optional for callers either way.
func (s *Service) ExtractSearchIntent(ctx context.Context, prompt string) jobs.SearchFilters {
	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	var filters jobs.SearchFilters

	raw, err := s.complete(ctx, extractInstruction, prompt, extractTemperature, extractMaxTokens)
	if err != nil {
		s.logger.Warn("search intent extraction failed", zap.Error(err))
		return filters
	}

	if !s.extractor.Decode(raw, &filters) {
		s.logger.Warn("search intent extraction returned unparseable payload",
			zap.String("response_preview", logger.TruncateForLog(raw, s.maxLogLen)),
		)
		return jobs.SearchFilters{}
	}

	return filters
}

func (s *Service) complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	s.logger.Debug("chat completion request",
		zap.String("model", s.model),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, s.maxLogLen)),
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("chat completion returned empty content")
	}

	s.logger.Debug("chat completion response",
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", logger.TruncateForLog(text, s.maxLogLen)),
	)

	return text, nil
}

// buildSystemInstruction assembles the persona preamble from the free-form
// facts map. Decoding failures only cost the typed rendering; the persona
// header and guidance rules are always present.
func buildSystemInstruction(facts map[string]any) string {
	var decoded platformFacts
	if facts != nil {
		// Best effort: undecodable values fall through to Extra or are dropped.
		_ = mapstructure.Decode(facts, &decoded)
	}

	name := decoded.PlatformName
	if strings.TrimSpace(name) == "" {
		name = "CareerLink"
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "You are the %s assistant, a friendly career advisor on a job search platform.\n", name)

	if decoded.Founded != "" {
		fmt.Fprintf(&builder, "The platform was founded in %s.\n", decoded.Founded)
	}
	if len(decoded.Features) > 0 {
		fmt.Fprintf(&builder, "Platform features: %s.\n", strings.Join(decoded.Features, ", "))
	}

	if len(decoded.Extra) > 0 {
		keys := make([]string, 0, len(decoded.Extra))
		for key := range decoded.Extra {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		builder.WriteString("Additional facts:\n")
		for _, key := range keys {
			fmt.Fprintf(&builder, "- %s: %v\n", key, decoded.Extra[key])
		}
	}

	builder.WriteString("Guidance: answer briefly and concretely, stay on career and job-search topics, ")
	builder.WriteString("and never invent platform data you were not given.")

	return builder.String()
}
