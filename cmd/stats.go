package main

import (
	"encoding/json"

	"github.com/farellandr/promptbox/config"
	"github.com/farellandr/promptbox/internal/engagement"
	"github.com/farellandr/promptbox/internal/models"
	"github.com/farellandr/promptbox/internal/repository"
	"github.com/spf13/cobra"
)

var statsLimit int

type statsReport struct {
	TopCreators []models.CreatorStats      `json:"topCreators"`
	MostLiked   []models.Prompt            `json:"mostLiked"`
	TopRated    []models.Prompt            `json:"topRated"`
	Categories  []models.CategoryWithCount `json:"categories"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print engagement rankings as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg.SeedDefaults = false
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		store := repository.NewStore(db, log)
		prompts, err := store.Prompts.ListAll()
		if err != nil {
			return err
		}
		categories, err := store.Categories.ListAll()
		if err != nil {
			return err
		}

		report := statsReport{
			TopCreators: engagement.TopCreators(prompts, statsLimit),
			MostLiked:   engagement.MostLiked(prompts, statsLimit),
			TopRated:    engagement.TopRated(prompts, statsLimit),
			Categories:  engagement.CountByCategory(prompts, categories),
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", engagement.DefaultTopN, "entries per ranking")
}
