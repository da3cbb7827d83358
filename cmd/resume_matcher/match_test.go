package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfelix/resume-matcher/internal/config"
	"github.com/jfelix/resume-matcher/internal/schemas"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJob_FromFile(t *testing.T) {
	jobPath := writeTempFile(t, "job.json", `{
		"title": "Senior Software Engineer",
		"required_skills": ["Go", "PostgreSQL"],
		"min_years": 5,
		"location": "Remote"
	}`)

	job, err := loadJob(context.Background(), &config.Config{Job: jobPath})
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", job.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.RequiredSkills)
	assert.Equal(t, 5.0, job.MinYears)
}

func TestLoadJob_FileFailsSchema(t *testing.T) {
	jobPath := writeTempFile(t, "job.json", `{"company": "Acme Corp"}`)

	_, err := loadJob(context.Background(), &config.Config{Job: jobPath})
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestLoadJob_URLRequiresTitle(t *testing.T) {
	matchJobTitle = ""
	_, err := loadJob(context.Background(), &config.Config{JobURL: "https://example.org/jobs/1"})
	assert.ErrorContains(t, err, "--job-title")
}

func TestLoadMergedConfig_FlagOverridesFile(t *testing.T) {
	resumePath := writeTempFile(t, "resume.txt", "resume body")
	cfgPath := writeTempFile(t, "config.json", `{"resume": "`+resumePath+`", "verbose": false}`)

	cmd := matchCommand
	require.NoError(t, cmd.Flags().Set("verbose", "true"))
	defer func() { _ = cmd.Flags().Set("verbose", "false") }()
	matchVerbose = true

	cfg, err := loadMergedConfig(cmd, cfgPath, map[string]func(*config.Config){
		"verbose": func(c *config.Config) { c.Verbose = matchVerbose },
	})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, resumePath, cfg.Resume)
}
