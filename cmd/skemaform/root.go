package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/skemaform/internal/config"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	root := &cobra.Command{
		Use:           "skemaform",
		Short:         "Validate documents and report errors shaped like the data",
		Long:          `skemaform validates JSON or YAML documents against a JSON Schema and prints the errors as a tree that mirrors the document, optionally narrowed to one field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file (rotated) instead of stderr")

	root.AddCommand(newValidateCmd(cfg), newVersionCmd())
	return root
}
