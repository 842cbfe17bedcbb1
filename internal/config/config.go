package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the blockplan configuration
type Config struct {
	LLM        LLMConfig        `mapstructure:"llm"`
	Loop       LoopConfig       `mapstructure:"loop"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

// LLMConfig contains planner backend settings
type LLMConfig struct {
	Model       string  `mapstructure:"model"`
	APIKeyEnv   string  `mapstructure:"api_key_env"`
	BaseURL     string  `mapstructure:"base_url"`
	OllamaHost  string  `mapstructure:"ollama_host"`
	Temperature float32 `mapstructure:"temperature"`
}

// APIKey resolves the API key from the configured environment variable
func (c LLMConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// LoopConfig contains refinement loop settings
type LoopConfig struct {
	MaxIterations int `mapstructure:"max_iterations"`
}

// ExperimentConfig contains sweep and persistence settings
type ExperimentConfig struct {
	Sizes         []int  `mapstructure:"sizes"`
	RunsPerConfig int    `mapstructure:"runs_per_config"`
	MaxIterations int    `mapstructure:"max_iterations"`
	ResultsCSV    string `mapstructure:"results_csv"`
	ResultsDB     string `mapstructure:"results_db"`
	ChartPath     string `mapstructure:"chart_path"`
}

// Load reads the config from the working directory
func Load(workDir string) (*Config, error) {
	configPath := filepath.Join(workDir, ".blockplan", "config.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	return &cfg, nil
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:       "gpt-4o",
			APIKeyEnv:   "OPENAI_API_KEY",
			Temperature: 0.7,
		},
		Loop: LoopConfig{
			MaxIterations: 20,
		},
		Experiment: ExperimentConfig{
			Sizes:         []int{3, 4, 5},
			RunsPerConfig: 10,
			MaxIterations: 25,
			ResultsCSV:    "experiment_results.csv",
			ResultsDB:     "experiment_results.db",
			ChartPath:     "average_iterations.png",
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaults.LLM.Model
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = defaults.LLM.APIKeyEnv
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = defaults.LLM.Temperature
	}
	if cfg.Loop.MaxIterations == 0 {
		cfg.Loop.MaxIterations = defaults.Loop.MaxIterations
	}
	if len(cfg.Experiment.Sizes) == 0 {
		cfg.Experiment.Sizes = defaults.Experiment.Sizes
	}
	if cfg.Experiment.RunsPerConfig == 0 {
		cfg.Experiment.RunsPerConfig = defaults.Experiment.RunsPerConfig
	}
	if cfg.Experiment.MaxIterations == 0 {
		cfg.Experiment.MaxIterations = defaults.Experiment.MaxIterations
	}
	if cfg.Experiment.ResultsCSV == "" {
		cfg.Experiment.ResultsCSV = defaults.Experiment.ResultsCSV
	}
	if cfg.Experiment.ResultsDB == "" {
		cfg.Experiment.ResultsDB = defaults.Experiment.ResultsDB
	}
	if cfg.Experiment.ChartPath == "" {
		cfg.Experiment.ChartPath = defaults.Experiment.ChartPath
	}
}
