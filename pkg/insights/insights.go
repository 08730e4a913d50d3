// Package insights derives the dashboard views from an entry collection:
// the mood trend, recent logs, theme cloud weights and share/lookup text.
package insights

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/unowned-ai/reflections/pkg/journal"
)

const (
	EmptyJournalTitle = "Your journey begins with a single entry."
	EmptyJournalHint  = "No data to display yet."
	EmptyThemes       = "Write more to see themes emerge..."
	UntitledEntry     = "Untitled"

	// RecentLimit is how many recent logs the dashboard shows.
	RecentLimit = 4

	previewRunes = 50
	defineURL    = "https://www.google.com/search?q=define+"
)

// TrendPoint is one mood sample, labeled by the entry's date.
type TrendPoint struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Mood  int    `json:"mood"`
}

// MoodTrend returns one point per entry in insertion order. Dates are user
// editable, so the sequence is not necessarily chronological.
func MoodTrend(entries []journal.Entry) []TrendPoint {
	points := make([]TrendPoint, len(entries))
	for i, e := range entries {
		points[i] = TrendPoint{Label: axisLabel(e.Date), Date: e.Date, Mood: e.Mood}
	}
	return points
}

// axisLabel drops the year: "2024-03-09" becomes "03-09".
func axisLabel(date string) string {
	if len(date) > 5 && date[4] == '-' {
		return date[5:]
	}
	return date
}

// RecentLog is the short card shown for a recent entry.
type RecentLog struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Preview string `json:"preview"`
}

// Recent returns up to n entries, newest first.
func Recent(entries []journal.Entry, n int) []RecentLog {
	if n <= 0 {
		return []RecentLog{}
	}
	if n > len(entries) {
		n = len(entries)
	}
	logs := make([]RecentLog, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		e := entries[i]
		title := e.MoodLabel
		if title == "" {
			title = UntitledEntry
		}
		logs = append(logs, RecentLog{
			ID:      e.ID,
			Date:    e.Date,
			Title:   title,
			Preview: preview(e.Reflection),
		})
	}
	return logs
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewRunes {
		runes = runes[:previewRunes]
	}
	return string(runes) + "..."
}

// ShareText composes the summary handed to share targets.
func ShareText(d journal.Draft) string {
	return fmt.Sprintf("My Reflection for %s:\n\nPast: %s\nFuture: %s\nMood: %s (%d/10)",
		d.Date, d.Past, d.Future, d.MoodLabel, d.Mood)
}

// DefineURL returns a web lookup for word. It reports false for blank input.
func DefineURL(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}
	return defineURL + url.QueryEscape(word), true
}

// CloudWeight is the visual weight of a theme word.
type CloudWeight struct {
	// Size is a font size in rem, between 0.8 and 3.
	Size float64 `json:"size"`
	// Opacity is between 0.3 and 1.
	Opacity float64 `json:"opacity"`
}

// Weight maps an occurrence count to a linear, clamped visual weight.
func Weight(value int) CloudWeight {
	v := float64(value)
	return CloudWeight{
		Size:    math.Min(3, 0.8+v*0.15),
		Opacity: math.Min(1, 0.3+v*0.15),
	}
}
