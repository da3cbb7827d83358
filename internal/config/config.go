// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/jfelix/resume-matcher/internal/match"
	"github.com/jfelix/resume-matcher/internal/skills"
)

// Config is the file-loadable configuration. All fields are optional;
// missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume     string `json:"resume,omitempty"`     // Path to resume text file
	Job        string `json:"job,omitempty"`        // Path to job description JSON file
	JobURL     string `json:"job_url,omitempty"`    // URL to fetch job posting from
	Vocabulary string `json:"vocabulary,omitempty"` // Path to skill vocabulary override

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ListenAddr  string `json:"listen_addr,omitempty"`  // HTTP server bind address

	// Behavior
	Verbose bool          `json:"verbose,omitempty"`
	Scoring *match.Config `json:"scoring,omitempty"` // Overrides the default weights
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	for _, path := range []string{c.Resume, c.Job, c.Vocabulary} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}
	if c.Scoring != nil {
		if sum := c.Scoring.Weights.Sum(); sum != 100 {
			return fmt.Errorf("config error: scoring weights must sum to 100, got %d", sum)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags always win for booleans, so they are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.Scoring == nil {
		result.Scoring = defaults.Scoring
	}
	return result
}

// ApplyEnv fills service credentials from the environment, loading a .env
// file first when present. Explicit config values win over the environment.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// ScoringConfig returns the configured scoring parameters, or the defaults.
func (c *Config) ScoringConfig() match.Config {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return match.DefaultConfig()
}

// LoadVocabulary reads a skill vocabulary from a JSON file, or returns the
// built-in vocabulary when no path is configured.
func (c *Config) LoadVocabulary() (*skills.Vocabulary, error) {
	if c.Vocabulary == "" {
		return skills.DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(c.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", c.Vocabulary, err)
	}
	var vocab skills.Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	return &vocab, nil
}
