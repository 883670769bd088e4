// Package main implements the listd checklist manager CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/listd/internal/config"
	"github.com/sandeepkv93/listd/internal/session"
	"github.com/sandeepkv93/listd/internal/storage"
	"github.com/sandeepkv93/listd/internal/update"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	flagConfig   string
	flagDataFile string
)

var rootCmd = &cobra.Command{
	Use:           "listd",
	Short:         "listd - named checklists with a terminal UI",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data", "", "path to the JSON data file")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	sess, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(update.NewModel(sess, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("listd failed: %w", err)
	}
	return nil
}

func loadConfig() (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flagDataFile != "" {
		cfg.DataFile = flagDataFile
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "listd",
	})
	return cfg, logger, nil
}

// openSession loads the data file and wires it to a live session. A corrupt
// data file is refused rather than overwritten; the user decides what to do
// with it.
func openSession(cfg config.Config, logger *log.Logger) (*session.Session, error) {
	store := storage.NewStore(cfg.DataFile)
	store.SeedFirstRun = cfg.SeedFirstRun

	doc, err := store.Load()
	if err != nil {
		if errors.Is(err, storage.ErrCorruptData) {
			logger.Error("data file is corrupt; fix or move it and retry", "path", cfg.DataFile)
		}
		return nil, err
	}
	logger.Debug("loaded data file", "path", cfg.DataFile, "lists", len(doc.Lists))
	return session.New(doc, store), nil
}
