package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/listd/internal/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the data file parses and passes validation",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	store := storage.NewStore(cfg.DataFile)
	store.SeedFirstRun = false

	doc, err := store.Load()
	if err != nil {
		return fmt.Errorf("verify %s: %w", cfg.DataFile, err)
	}

	completed, total := doc.Totals()
	logger.Info("data file ok", "path", cfg.DataFile, "lists", len(doc.Lists), "tasks", total, "completed", completed)
	return nil
}
