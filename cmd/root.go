package main

import (
	"github.com/farellandr/promptbox/config"
	"github.com/farellandr/promptbox/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "promptbox",
	Short: "Community catalog of AI prompt templates",
	Long: `promptbox serves a JSON API for browsing, creating, voting on and
categorizing short AI prompt templates. Without a subcommand it runs the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&dbPath, "db", "", "SQLite database file (overrides DB_PATH)",
	)

	rootCmd.AddCommand(serveCmd, seedCmd, statsCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
