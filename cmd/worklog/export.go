// ABOUTME: CLI command for exporting the career log to a document.
// ABOUTME: Runs the export pipeline and saves the resulting bytes to disk.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/worklog/internal/export"
	"github.com/2389-research/worklog/internal/models"
	"github.com/2389-research/worklog/internal/tui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the career log",
	Long: `Export career log records to a downloadable document.

Formats: csv, json, txt, pdf, docx.
The docx format is a rich-text (RTF) approximation, saved as .rtf.`,
	RunE: runExportCmd,
}

// Flags
var (
	exportFormat      string
	exportOutput      string
	exportFrom        string
	exportTo          string
	exportCategories  []string
	exportSelect      []string
	exportMetadata    bool
	exportInteractive bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format (default from config, else csv)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output file path (default: suggested name in cwd)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Inclusive start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Inclusive end date (YYYY-MM-DD)")
	exportCmd.Flags().StringSliceVar(&exportCategories, "category", nil, "Restrict to a category (repeatable)")
	exportCmd.Flags().StringSliceVar(&exportSelect, "select", nil, "Restrict to a record ID (repeatable)")
	exportCmd.Flags().BoolVar(&exportMetadata, "include-metadata", false, "Include record IDs and timestamps")
	exportCmd.Flags().BoolVar(&exportInteractive, "interactive", false, "Configure the export in a TUI wizard")
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	if exportInteractive {
		return runExportWizard()
	}

	formatName := exportFormat
	if formatName == "" {
		formatName = globalConfig.GetDefaultFormat()
	}
	format, err := models.ParseFormat(formatName)
	if err != nil {
		return err
	}

	opts := models.ExportOptions{
		Format:          format,
		IncludeMetadata: exportMetadata,
		FromDate:        exportFrom,
		ToDate:          exportTo,
		Categories:      exportCategories,
	}
	if len(exportSelect) > 0 {
		opts.SelectedOnly = true
		opts.Selected = make(map[string]bool, len(exportSelect))
		for _, id := range exportSelect {
			opts.Selected[id] = true
		}
	}

	path, err := exportAndSave(opts, exportOutput)
	if err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", path)
	return nil
}

// exportAndSave runs the pure export pipeline and writes the result to disk.
// An explicit outPath wins; otherwise the suggested filename lands in cwd.
func exportAndSave(opts models.ExportOptions, outPath string) (string, error) {
	records, err := globalStore.ListRecords(0, 0)
	if err != nil {
		return "", fmt.Errorf("failed to list records: %w", err)
	}

	result, err := export.Export(records, &opts)
	if err != nil {
		var re *export.RenderError
		if errors.As(err, &re) {
			return "", fmt.Errorf("%w (try --format txt)", re)
		}
		return "", err
	}

	path := outPath
	if path == "" {
		path = result.Filename
	} else if filepath.Ext(path) == "" {
		path = path + "." + opts.Format.Extension()
	}

	if err := os.WriteFile(path, result.Data, 0600); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return path, nil
}

func runExportWizard() error {
	exportFn := func(_ context.Context, opts models.ExportOptions) (string, error) {
		return exportAndSave(opts, "")
	}

	model := tui.NewExportModel(globalConfig.GetDefaultFormat(), exportFn)
	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.ExportModel)
	if !final.Completed() {
		fmt.Println("Export cancelled.")
		return nil
	}

	fmt.Printf("Exported to %s\n", final.SavedPath())
	return nil
}
