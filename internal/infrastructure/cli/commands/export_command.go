package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/bddgen/internal/app"
	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/infrastructure/export"
)

// NewExportCommand creates the export command with txt and pdf subcommands.
// Both export the scenarios of a history entry, the most recent one by
// default.
func NewExportCommand(container *app.Container) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export generated scenarios as txt or pdf",
	}

	exportCmd.AddCommand(
		newExportTxtCommand(container),
		newExportPdfCommand(container),
	)

	return exportCmd
}

// newExportTxtCommand creates the 'export txt' subcommand
func newExportTxtCommand(container *app.Container) *cobra.Command {
	var (
		entryID int64
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "txt",
		Short: "Export scenarios as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := resolveResult(container, entryID)
			if err != nil {
				return err
			}
			path := outPath
			if path == "" {
				path = export.ScenarioFilename("txt", time.Now())
			}
			if err := writePlainText(path, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported scenarios to %s\n", path)
			return nil
		},
	}

	cmd.Flags().Int64Var(&entryID, "id", 0, "History entry to export (default most recent)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination path (default bdd-scenarios-<timestamp>.txt)")
	return cmd
}

// newExportPdfCommand creates the 'export pdf' subcommand
func newExportPdfCommand(container *app.Container) *cobra.Command {
	var (
		entryID int64
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export scenarios as a PDF document",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := resolveResult(container, entryID)
			if err != nil {
				return err
			}
			path := outPath
			if path == "" {
				path = export.ScenarioFilename("pdf", time.Now())
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.PDF(f, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported scenarios to %s\n", path)
			return nil
		},
	}

	cmd.Flags().Int64Var(&entryID, "id", 0, "History entry to export (default most recent)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination path (default bdd-scenarios-<timestamp>.pdf)")
	return cmd
}

// resolveResult replays the requested history entry (or the most recent one)
// and returns its scenarios.
func resolveResult(container *app.Container, entryID int64) (domain.GenerationResult, error) {
	session := container.Session
	if entryID == 0 {
		entries := session.History()
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: history is empty", domain.ErrNothingToExport)
		}
		entryID = entries[0].ID
	}
	if err := session.SelectEntry(entryID); err != nil {
		return nil, err
	}
	active, ok := session.ActiveResult()
	if !ok {
		return nil, fmt.Errorf("%w: no active result", domain.ErrNothingToExport)
	}
	return active.Result, nil
}
