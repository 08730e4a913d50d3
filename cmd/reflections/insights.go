package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/reflections/pkg/insights"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Show the most frequent words in your gratitude and hope notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, b, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		themesCfg := cfg.Themes
		if cmd.Flags().Changed("limit") {
			themesCfg.Limit, _ = cmd.Flags().GetInt("limit")
			if err := themesCfg.Validate(); err != nil {
				return err
			}
		}
		stats := themesCfg.Extractor().Extract(store.All())

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(out, stats)
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, insights.EmptyThemes)
			return nil
		}
		for _, ws := range stats {
			fmt.Fprintf(out, "%-20s %d\n", ws.Text, ws.Value)
		}
		return nil
	},
}

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show mood over time, one point per entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, b, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		points := insights.MoodTrend(store.All())
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(out, points)
		}
		if len(points) == 0 {
			fmt.Fprintln(out, insights.EmptyJournalHint)
			return nil
		}
		for _, p := range points {
			fmt.Fprintf(out, "%s %2d %s\n", p.Label, p.Mood, bar(p.Mood))
		}
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the latest entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, b, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		n, _ := cmd.Flags().GetInt("count")
		logs := insights.Recent(store.All(), n)
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(out, logs)
		}
		if len(logs) == 0 {
			fmt.Fprintln(out, insights.EmptyJournalTitle)
			return nil
		}
		for _, l := range logs {
			fmt.Fprintf(out, "%s  %s\n  %s\n", l.Date, l.Title, l.Preview)
		}
		return nil
	},
}

func bar(mood int) string {
	if mood < 0 {
		mood = 0
	}
	return strings.Repeat("█", mood)
}

func initInsightsCmds() {
	themesCmd.Flags().Int("limit", 0, "Maximum number of themes (default from themes.limit)")
	recentCmd.Flags().IntP("count", "n", insights.RecentLimit, "Number of entries to show")
	for _, c := range []*cobra.Command{themesCmd, trendCmd, recentCmd} {
		c.Flags().Bool("json", false, "Print as JSON")
	}
	rootCmd.AddCommand(themesCmd, trendCmd, recentCmd)
}
