// ABOUTME: Root Cobra command and global flags for worklog CLI.
// ABOUTME: Sets up lifecycle hooks for config loading and store initialization.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/worklog/internal/config"
	"github.com/2389-research/worklog/internal/storage"
)

var globalConfig *config.Config
var globalStore storage.RecordStore

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "A local-first career log with multi-format export",
	Long: `
██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗██╗      ██████╗  ██████╗
██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝██║     ██╔═══██╗██╔════╝
██║ █╗ ██║██║   ██║██████╔╝█████╔╝ ██║     ██║   ██║██║  ███╗
██║███╗██║██║   ██║██╔══██╗██╔═██╗ ██║     ██║   ██║██║   ██║
╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗███████╗╚██████╔╝╚██████╔╝
 ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝ ╚═════╝  ╚═════╝

Track career accomplishments and export them to CSV, JSON,
plain text, PDF, or rich-text documents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		root, err := cfg.GetLogRoot()
		if err != nil {
			return fmt.Errorf("failed to resolve log root: %w", err)
		}
		store, err := storage.NewRecordMDStore(root)
		if err != nil {
			return fmt.Errorf("failed to open record store: %w", err)
		}
		globalStore = store

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalStore != nil {
			_ = globalStore.Close()
			globalStore = nil
		}
		return nil
	},
}
