package main

import (
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/listd/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write a plain-text report of every list without opening the UI",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	sess, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	path := cfg.ExportFile
	if len(args) > 0 {
		path = args[0]
	}

	writer := export.Writer{}
	if err := writer.WriteFile(sess.Document(), path); err != nil {
		return err
	}
	logger.Info("exported", "path", path)
	return nil
}
