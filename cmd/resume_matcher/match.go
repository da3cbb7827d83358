package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfelix/resume-matcher/internal/config"
	"github.com/jfelix/resume-matcher/internal/ingest"
	"github.com/jfelix/resume-matcher/internal/match"
	"github.com/jfelix/resume-matcher/internal/observability"
	"github.com/jfelix/resume-matcher/internal/schemas"
	"github.com/jfelix/resume-matcher/internal/skills"
	"github.com/jfelix/resume-matcher/internal/store"
	"github.com/jfelix/resume-matcher/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job requirement",
	Long: `Structures the resume, loads the job requirement, and scores the fit
across skills, experience, education, role alignment and location.

The job comes from a JSON file (--job) or a posting URL (--job-url). URL mode
extracts the posting text and derives required skills from it; --job-title is
then mandatory because postings rarely state their title unambiguously.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath  string
	matchResume      string
	matchJob         string
	matchJobURL      string
	matchJobTitle    string
	matchVocabulary  string
	matchAPIKey      string
	matchDatabaseURL string
	matchJSON        bool
	matchVerbose     bool
)

const fetchTimeout = 30 * time.Second

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCommand.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file")
	matchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job requirement JSON file (mutually exclusive with --job-url)")
	matchCommand.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	matchCommand.Flags().StringVar(&matchJobTitle, "job-title", "", "Job title to score against (required with --job-url)")
	matchCommand.Flags().StringVar(&matchVocabulary, "vocabulary", "", "Path to skill vocabulary JSON override")
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	matchCommand.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL for persisting results (optional, defaults to DATABASE_URL env var)")
	matchCommand.Flags().BoolVar(&matchJSON, "json", false, "Print the raw match result JSON instead of the formatted summary")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, matchConfigPath, map[string]func(*config.Config){
		"resume":     func(c *config.Config) { c.Resume = matchResume },
		"job":        func(c *config.Config) { c.Job = matchJob },
		"job-url":    func(c *config.Config) { c.JobURL = matchJobURL },
		"vocabulary": func(c *config.Config) { c.Vocabulary = matchVocabulary },
		"api-key":    func(c *config.Config) { c.APIKey = matchAPIKey },
		"db-url":     func(c *config.Config) { c.DatabaseURL = matchDatabaseURL },
		"verbose":    func(c *config.Config) { c.Verbose = matchVerbose },
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}

	job, err := loadJob(ctx, cfg)
	if err != nil {
		return err
	}

	doc, err := ingest.Document(cfg.Resume)
	if err != nil {
		return err
	}
	prof, err := structureDocument(ctx, cfg, doc)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintProfile(prof)
	}

	scorer, err := match.NewScorer(cfg.ScoringConfig())
	if err != nil {
		return err
	}
	result, err := scorer.Score(prof, job)
	if err != nil {
		return err
	}

	if cfg.DatabaseURL != "" {
		if err := saveMatch(ctx, cfg.DatabaseURL, prof, result); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "Match saved: %s\n", result.ID)
		}
	}

	if matchJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	return nil
}

// loadJob builds the job requirement from a JSON file or a posting URL.
// File mode validates against the embedded schema first. URL mode derives
// required skills from the posting text via the vocabulary scan.
func loadJob(ctx context.Context, cfg *config.Config) (*types.JobRequirement, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file %s: %w", cfg.Job, err)
		}
		if err := schemas.ValidateJobRequirement(data); err != nil {
			return nil, err
		}
		var job types.JobRequirement
		if err := json.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("failed to parse job JSON: %w", err)
		}
		return &job, nil
	}

	if matchJobTitle == "" {
		return nil, fmt.Errorf("--job-title is required with --job-url")
	}

	text, err := ingest.NewClient(fetchTimeout).JobPosting(ctx, cfg.JobURL)
	if err != nil {
		return nil, err
	}
	vocab, err := cfg.LoadVocabulary()
	if err != nil {
		return nil, err
	}

	return &types.JobRequirement{
		Title:          matchJobTitle,
		RequiredSkills: skills.NewTaxonomy(vocab).ScanText(text),
	}, nil
}

func saveMatch(ctx context.Context, databaseURL string, prof *types.StructuredProfile, result *types.MatchResult) error {
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := db.SaveProfile(ctx, prof); err != nil {
		return err
	}
	return db.SaveMatch(ctx, result)
}
