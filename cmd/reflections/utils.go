package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/reflections/pkg/journal"
)

// addDraftFlags registers the entry form fields on cmd.
func addDraftFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Entry date as YYYY-MM-DD (default today)")
	cmd.Flags().Int("mood", journal.DefaultMood, "Mood score from 1 to 10")
	cmd.Flags().String("label", "", "One or two words describing the mood")
	cmd.Flags().String("past", "", "Things I'm grateful for")
	cmd.Flags().String("future", "", "Things I hope for")
	cmd.Flags().String("reflection", "", "Free-form reflection")
}

// draftFromFlags reads the fields registered by addDraftFlags.
func draftFromFlags(cmd *cobra.Command, now time.Time) journal.Draft {
	d := journal.NewDraft(now)
	if date, _ := cmd.Flags().GetString("date"); date != "" {
		d.Date = date
	}
	d.Mood, _ = cmd.Flags().GetInt("mood")
	d.MoodLabel, _ = cmd.Flags().GetString("label")
	d.Past, _ = cmd.Flags().GetString("past")
	d.Future, _ = cmd.Flags().GetString("future")
	d.Reflection, _ = cmd.Flags().GetString("reflection")
	return d
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func printEntry(w io.Writer, e journal.Entry) {
	fmt.Fprintf(w, "ID:         %d\n", e.ID)
	fmt.Fprintf(w, "Date:       %s\n", e.Date)
	fmt.Fprintf(w, "Mood:       %d/10 %s\n", e.Mood, e.MoodLabel)
	fmt.Fprintf(w, "Past:       %s\n", e.Past)
	fmt.Fprintf(w, "Future:     %s\n", e.Future)
	fmt.Fprintf(w, "Reflection: %s\n", e.Reflection)
}
