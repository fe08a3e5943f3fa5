package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/careerlink/assistant/internal/ai"
	"github.com/careerlink/assistant/internal/ai/gemini"
	"github.com/careerlink/assistant/internal/ai/openai"
	"github.com/careerlink/assistant/internal/intent"
	"github.com/careerlink/assistant/internal/jobs"
	"github.com/careerlink/assistant/internal/logger"
	"github.com/careerlink/assistant/internal/reply"
	"github.com/careerlink/assistant/internal/secrets"
)

const (
	defaultMaxJobs      = 5
	defaultMaxCompanies = 5
	defaultMaxFields    = 5
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session with the assistant",
	Run: func(cmd *cobra.Command, _ []string) {
		chat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("data-file", "s", "", "JSON snapshot of platform data rendered into replies")

	viper.BindPFlag("data-file", chatCmd.Flags().Lookup("data-file"))
}

// session wires the classification and assembly pipeline for one chat run.
type session struct {
	resolver  *ai.Resolver
	generator ai.Generator
	store     *reply.Store
	snapshot  *jobs.Snapshot
	facts     map[string]any
	limits    ReplyConfig
	logger    *zap.Logger
}

func chat(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		config = &Config{}
	}

	logger.Info("starting the careerlink assistant", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	snapshot := &jobs.Snapshot{}
	dataFile := strings.TrimSpace(viper.GetString("data-file"))
	if dataFile == "" {
		dataFile = strings.TrimSpace(config.DataFile)
	}
	if dataFile != "" {
		snapshot, err = jobs.LoadSnapshot(dataFile)
		if err != nil {
			logger.Fatal("loading data snapshot", zap.Error(err))
		}
		logger.Info("loaded data snapshot",
			zap.String("file", dataFile),
			zap.Int("jobs", len(snapshot.Jobs)),
			zap.Int("companies", len(snapshot.Companies)),
		)
	} else {
		logger.Warn("no data snapshot configured, replies will render empty-data sentinels")
	}

	s := &session{
		resolver:  ai.NewResolver(intent.NewClassifier(intent.DefaultLexicon()), prepareRemoteClassifier(ctx, config.AI, logger), logger),
		generator: prepareGenerator(config.AI, logger),
		store:     reply.NewStore(reply.DefaultTemplates(), nil),
		snapshot:  snapshot,
		facts:     config.Facts,
		limits:    replyLimits(config.Reply),
		logger:    logger,
	}

	input := promptui.Prompt{Label: "you"}

	for {
		message, err := input.Run()
		if err != nil {
			logger.Info("exiting", zap.String("reason", "prompt closed"))
			return
		}

		if isExit(message) {
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return
		}

		fmt.Printf("\nassistant: %s\n\n", s.reply(ctx, message))
	}
}

func isExit(message string) bool {
	switch strings.ToLower(strings.TrimSpace(message)) {
	case "exit", "quit", "bye":
		return true
	}
	return false
}

// reply runs one message through the pipeline: classify, then assemble a
// templated answer or delegate to free-form generation.
func (s *session) reply(ctx context.Context, message string) string {
	classification := s.resolver.Resolve(ctx, message)

	s.logger.Debug("message classified",
		zap.String("intent", string(classification.Intent)),
		zap.Float64("confidence", classification.Confidence),
	)

	switch classification.Intent {
	case intent.JobSearch:
		if s.generator != nil {
			return s.store.Assemble(intent.JobSearch, map[string]string{
				"jobs": reply.FormatJobs(s.searchJobs(ctx, message), s.limits.MaxJobs),
			})
		}
	case intent.Generic, intent.CareerGuidance:
		// Free-form questions get a generated answer when the capability is
		// configured; otherwise the templated variants still apply.
		if s.generator != nil {
			return s.generator.Generate(ctx, message, s.facts)
		}
	}

	return s.store.Assemble(classification.Intent, s.fills())
}

// searchJobs narrows the snapshot with the extracted search intent. Empty
// filters (including every failure path) leave the full list in place.
func (s *session) searchJobs(ctx context.Context, message string) []*jobs.Job {
	filters := s.generator.ExtractSearchIntent(ctx, message)
	if filters.IsEmpty() {
		return s.snapshot.Jobs
	}

	matched := jobs.ApplyFilters(s.snapshot.Jobs, filters)
	s.logger.Debug("applied search filters",
		zap.Int("initial", len(s.snapshot.Jobs)),
		zap.Int("matched", len(matched)),
	)
	return matched
}

func (s *session) fills() map[string]string {
	return map[string]string{
		"jobs":        reply.FormatJobs(s.snapshot.Jobs, s.limits.MaxJobs),
		"topJobs":     reply.FormatJobs(topBySalary(s.snapshot.Jobs), s.limits.MaxJobs),
		"exampleJobs": reply.FormatJobs(remoteJobs(s.snapshot.Jobs), s.limits.MaxJobs),
		"companies":   reply.FormatCompanies(s.snapshot.Companies, s.limits.MaxCompanies),
		"fields":      reply.FormatFieldAggregates(s.snapshot.Fields, s.limits.MaxFields),
		"stats":       reply.FormatSalaryStats(s.snapshot.Salary),
	}
}

func topBySalary(items []*jobs.Job) []*jobs.Job {
	sorted := make([]*jobs.Job, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return salaryCeiling(sorted[i]) > salaryCeiling(sorted[j])
	})
	return sorted
}

func salaryCeiling(job *jobs.Job) float64 {
	if job == nil || job.Salary == nil {
		return 0
	}
	if job.Salary.Max > 0 {
		return job.Salary.Max
	}
	return job.Salary.Min
}

func remoteJobs(items []*jobs.Job) []*jobs.Job {
	remote := make([]*jobs.Job, 0, len(items))
	for _, job := range items {
		if job == nil {
			continue
		}
		if strings.EqualFold(job.JobType, "remote") || strings.Contains(strings.ToLower(job.Location), "remote") {
			remote = append(remote, job)
		}
	}
	return remote
}

func replyLimits(cfg *ReplyConfig) ReplyConfig {
	limits := ReplyConfig{
		MaxJobs:      defaultMaxJobs,
		MaxCompanies: defaultMaxCompanies,
		MaxFields:    defaultMaxFields,
	}
	if cfg == nil {
		return limits
	}
	if cfg.MaxJobs > 0 {
		limits.MaxJobs = cfg.MaxJobs
	}
	if cfg.MaxCompanies > 0 {
		limits.MaxCompanies = cfg.MaxCompanies
	}
	if cfg.MaxFields > 0 {
		limits.MaxFields = cfg.MaxFields
	}
	return limits
}

// prepareRemoteClassifier builds the optional Gemini intent classifier.
// Returns nil (capability absent) when disabled or misconfigured; the
// resolver then classifies by keywords alone.
func prepareRemoteClassifier(ctx context.Context, cfg *AIConfig, logger *zap.Logger) ai.IntentClassifier {
	if cfg == nil || cfg.Classifier == nil || !cfg.Classifier.Enabled {
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Classifier.APIKeyFile,
	})
	if err != nil {
		logger.Warn("skipping remote intent classifier",
			zap.Error(err),
			zap.String("hint", "set ai.classifier.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Classifier.Model)
	if err != nil {
		logger.Warn("skipping remote intent classifier", zap.Error(err))
		return nil
	}

	classifierLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewClassifier(generator, classifierLogger, cfg.Classifier.MaxLogLength)
}

// prepareGenerator builds the optional remote generation service.
func prepareGenerator(cfg *AIConfig, logger *zap.Logger) ai.Generator {
	if cfg == nil || cfg.Generation == nil || !cfg.Generation.Enabled {
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "openai api key",
		File: cfg.Generation.APIKeyFile,
	})
	if err != nil {
		logger.Warn("skipping remote generation",
			zap.Error(err),
			zap.String("hint", "set ai.generation.api-key-file or OPENAI_API_KEY_FILE"),
		)
		return nil
	}

	serviceLogger := logger.With(
		zap.String("provider", "openai"),
		zap.String("model", cfg.Generation.Model),
	)

	service, err := openai.NewService(apiKey, cfg.Generation.Model, cfg.Generation.MaxTokens, cfg.Generation.MaxLogLength, serviceLogger)
	if err != nil {
		logger.Warn("skipping remote generation", zap.Error(err))
		return nil
	}

	return service
}
