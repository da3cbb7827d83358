package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfelix/resume-matcher/internal/config"
	"github.com/jfelix/resume-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for structuring resumes
and scoring them against job requirements. A database enables stored profile
and match lookups; an API key enables AI entity recognition. Both are optional.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveDebug      bool
	serveJSONLogs   bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, serveConfigPath, map[string]func(*config.Config){
		"addr": func(c *config.Config) { c.ListenAddr = serveAddr },
	})
	if err != nil {
		return err
	}
	merged := cfg.MergeWithDefaults(config.Config{ListenAddr: ":8080"})

	vocab, err := merged.LoadVocabulary()
	if err != nil {
		return err
	}

	srv, err := server.New(ctx, server.Config{
		Addr:        merged.ListenAddr,
		DatabaseURL: merged.DatabaseURL,
		APIKey:      merged.APIKey,
		Scoring:     merged.ScoringConfig(),
		Vocabulary:  vocab,
		Debug:       serveDebug,
		JSONLogs:    serveJSONLogs,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
