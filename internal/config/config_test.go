package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfelix/resume-matcher/internal/match"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"job_url": "https://example.org/jobs/123",
		"api_key": "test-key",
		"listen_addr": ":8080",
		"verbose": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/jobs/123", cfg.JobURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", "{not json"))
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	job := writeFile(t, "job.json", "{}")
	cfg := &Config{Job: job, JobURL: "https://example.org/jobs/123"}

	assert.Error(t, cfg.Validate())

	cfg.JobURL = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ScoringWeights(t *testing.T) {
	bad := match.DefaultConfig()
	bad.Weights.Location = 0
	cfg := &Config{Scoring: &bad}
	assert.Error(t, cfg.Validate())

	good := match.DefaultConfig()
	cfg.Scoring = &good
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:      "default",
		DatabaseURL: "postgres://localhost/matcher",
		ListenAddr:  ":9000",
	})

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, "postgres://localhost/matcher", merged.DatabaseURL)
	assert.Equal(t, ":9000", merged.ListenAddr)
}

func TestScoringConfig_Defaults(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, match.DefaultConfig(), cfg.ScoringConfig())
}

func TestLoadVocabulary(t *testing.T) {
	cfg := Config{}
	vocab, err := cfg.LoadVocabulary()
	require.NoError(t, err)
	assert.NotEmpty(t, vocab.Aliases)

	cfg.Vocabulary = writeFile(t, "vocab.json", `{
		"aliases": {"rb": "Ruby"},
		"categories": {"programming": ["Ruby"]},
		"soft_skills": ["mentoring"]
	}`)
	vocab, err = cfg.LoadVocabulary()
	require.NoError(t, err)
	assert.Equal(t, "Ruby", vocab.Aliases["rb"])

	cfg.Vocabulary = writeFile(t, "bad.json", "nope")
	_, err = cfg.LoadVocabulary()
	assert.Error(t, err)
}
