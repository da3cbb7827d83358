package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfelix/resume-matcher/internal/ai"
	"github.com/jfelix/resume-matcher/internal/config"
	"github.com/jfelix/resume-matcher/internal/ingest"
	"github.com/jfelix/resume-matcher/internal/observability"
	"github.com/jfelix/resume-matcher/internal/profile"
	"github.com/jfelix/resume-matcher/internal/skills"
	"github.com/jfelix/resume-matcher/internal/store"
	"github.com/jfelix/resume-matcher/internal/types"
)

var parseCommand = &cobra.Command{
	Use:   "parse",
	Short: "Structure a resume text file into a profile",
	Long: `Reads a plain-text resume, extracts contact details, skills, work history
and education, and prints the structured profile.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runParseCmd,
}

var (
	parseConfigPath  string
	parseResume      string
	parseVocabulary  string
	parseAPIKey      string
	parseDatabaseURL string
	parseJSON        bool
	parseVerbose     bool
)

func init() {
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCommand.Flags().StringVarP(&parseResume, "resume", "r", "", "Path to resume text file")
	parseCommand.Flags().StringVar(&parseVocabulary, "vocabulary", "", "Path to skill vocabulary JSON override")
	parseCommand.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	parseCommand.Flags().StringVar(&parseDatabaseURL, "db-url", "", "PostgreSQL connection URL for persisting the profile (optional, defaults to DATABASE_URL env var)")
	parseCommand.Flags().BoolVar(&parseJSON, "json", false, "Print the raw profile JSON instead of the formatted summary")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, parseConfigPath, map[string]func(*config.Config){
		"resume":     func(c *config.Config) { c.Resume = parseResume },
		"vocabulary": func(c *config.Config) { c.Vocabulary = parseVocabulary },
		"api-key":    func(c *config.Config) { c.APIKey = parseAPIKey },
		"db-url":     func(c *config.Config) { c.DatabaseURL = parseDatabaseURL },
		"verbose":    func(c *config.Config) { c.Verbose = parseVerbose },
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	doc, err := ingest.Document(cfg.Resume)
	if err != nil {
		return err
	}

	prof, err := structureDocument(ctx, cfg, doc)
	if err != nil {
		return err
	}

	if cfg.DatabaseURL != "" {
		if err := saveProfile(ctx, cfg.DatabaseURL, prof); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "Profile saved: %s\n", prof.ID)
		}
	}

	if parseJSON {
		return printJSON(prof)
	}
	observability.NewPrinter(os.Stdout).PrintProfile(prof)
	return nil
}

// structureDocument runs the profile pipeline, using AI entity recognition
// when an API key is available and degrading to pattern extraction when the
// call fails.
func structureDocument(ctx context.Context, cfg *config.Config, doc types.RawDocument) (*types.StructuredProfile, error) {
	vocab, err := cfg.LoadVocabulary()
	if err != nil {
		return nil, err
	}
	builder := profile.NewBuilder(profile.WithTaxonomy(skills.NewTaxonomy(vocab)))

	var external *types.ExtractedEntities
	if cfg.APIKey != "" {
		client, err := ai.NewGeminiClient(ctx, cfg.APIKey, ai.DefaultGeminiConfig())
		if err != nil {
			return nil, err
		}
		defer func() { _ = client.Close() }()

		breaker := ai.NewBreaker(client, ai.DefaultBreakerConfig())
		entities, err := breaker.Entities(ctx, doc.Text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: entity recognition unavailable, using pattern extraction only: %v\n", err)
		} else {
			external = entities
		}
	}

	return builder.StructureDocument(ctx, doc.Text, external)
}

func saveProfile(ctx context.Context, databaseURL string, prof *types.StructuredProfile) error {
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	return db.SaveProfile(ctx, prof)
}

// loadMergedConfig loads an optional config file, applies the overrides for
// flags the user actually set, then fills credentials from the environment.
func loadMergedConfig(cmd *cobra.Command, path string, overrides map[string]func(*config.Config)) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	for flag, apply := range overrides {
		if cmd.Flags().Changed(flag) {
			apply(cfg)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
