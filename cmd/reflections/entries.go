package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/reflections/pkg/insights"
	"github.com/unowned-ai/reflections/pkg/journal"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage journal entries",
	Long:  `Add, list, export and clear journal entries.`,
}

var addEntryCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a journal entry",
	Long: `Add an entry for today (or --date). A mood label or a reflection is required;
the remaining fields are optional.`,
	Example: `  reflections entries add --mood 8 --label Hopeful --past "coffee with Sam" --future "a calm week"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, b, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		entry, err := store.Append(cmd.Context(), draftFromFlags(cmd, time.Now()))
		if errors.Is(err, journal.ErrEmptyEntry) {
			return errors.New("Please enter at least a mood or a reflection.")
		}
		if err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Journal Entry Saved.")
		printEntry(cmd.OutOrStdout(), entry)
		return nil
	},
}

var listEntriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries in the order they were written",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, b, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		entries := store.All()
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(out, entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, insights.EmptyJournalTitle)
			return nil
		}
		fmt.Fprintln(out, "ID | Date | Mood | Label | Reflection")
		for _, e := range entries {
			fmt.Fprintf(out, "%d | %s | %d | %s | %s\n", e.ID, e.Date, e.Mood, e.MoodLabel, e.Reflection)
		}
		return nil
	},
}

var exportEntriesCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every entry as a JSON document",
	Long: `Write the whole journal as indented JSON. The default file name is
journal_export_YYYY-MM-DD.json in the current directory; use -o - for stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, b, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		data, err := insights.MarshalExport(store.All())
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "-" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}
		if output == "" {
			output = insights.ExportFilename(time.Now())
		}
		if err := os.WriteFile(output, data, 0o600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", store.Len(), output)
		return nil
	},
}

var clearEntriesCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries",
	Long:  `Delete every journal entry. This cannot be undone, so --yes is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("Are you sure you want to delete all entries? This cannot be undone. Re-run with --yes to confirm.")
		}

		store, b, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		removed := store.Len()
		if err := store.ClearAll(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear entries: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries.\n", removed)
		return nil
	},
}

func initEntriesCmd() {
	addDraftFlags(addEntryCmd)
	listEntriesCmd.Flags().Bool("json", false, "Print entries as JSON")
	exportEntriesCmd.Flags().StringP("output", "o", "", "Output file, or - for stdout")
	clearEntriesCmd.Flags().Bool("yes", false, "Confirm deleting every entry")

	entriesCmd.AddCommand(addEntryCmd, listEntriesCmd, exportEntriesCmd, clearEntriesCmd)
}
