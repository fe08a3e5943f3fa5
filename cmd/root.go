package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "careerlink-assistant"
)

type Config struct {
	// DataFile points to a JSON snapshot of platform data (jobs, companies,
	// salary aggregates) interpolated into replies.
	DataFile string `mapstructure:"data-file"`
	// Facts are free-form platform facts passed into the remote model's
	// instruction preamble.
	Facts map[string]any `mapstructure:"facts"`
	Reply *ReplyConfig   `mapstructure:"reply"`
	AI    *AIConfig      `mapstructure:"ai"`
}

type ReplyConfig struct {
	MaxJobs      int `mapstructure:"max-jobs"`
	MaxCompanies int `mapstructure:"max-companies"`
	MaxFields    int `mapstructure:"max-fields"`
}

type AIConfig struct {
	Generation *GenerationConfig `mapstructure:"generation"`
	Classifier *ClassifierConfig `mapstructure:"classifier"`
}

type GenerationConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxTokens    int    `mapstructure:"max-tokens"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ClassifierConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "careerlink-assistant is the chat assistant for the CareerLink job platform",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.generation.api-key-file", "OPENAI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding OPENAI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.classifier.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is careerlink-assistant.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the chat command now. If there is no config, we can skip initialization.
	if chatCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
