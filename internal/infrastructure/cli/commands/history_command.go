package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/bddgen/internal/app"
	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/infrastructure/export"
)

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past generation sessions",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryShowCommand(container),
		newHistoryDeleteCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generation sessions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := container.Session.History()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), msgNoHistoryRecorded)
				return nil
			}
			renderHistoryList(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

// newHistoryShowCommand creates the 'history show' subcommand
func newHistoryShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the scenarios of one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			entry, err := container.Session.Entry(id)
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), container.Session.Settings(), entry.Result)
			return nil
		},
	}
}

// newHistoryDeleteCommand creates the 'history delete' subcommand
func newHistoryDeleteCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one session from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			container.Session.DeleteEntry(id)
			return nil
		},
	}
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all sessions from history",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.Session.ClearHistory()
			fmt.Fprintln(cmd.OutOrStdout(), msgHistoryCleared)
			return nil
		},
	}
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(container *app.Container) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full history as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := outPath
			if path == "" {
				path = export.HistoryFilename(time.Now())
			}
			if err := exportHistoryCSV(path, container.Session.History()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported history to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination path (default bdd-scenarios-history-<timestamp>.csv)")
	return cmd
}

// exportHistoryCSV writes the CSV to path; nothing is written when the
// history is empty.
func exportHistoryCSV(path string, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: history is empty", domain.ErrNothingToExport)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.HistoryCSV(f, entries)
}

func parseEntryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", raw)
	}
	return id, nil
}
