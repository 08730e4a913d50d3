// Package themes ranks the most frequent meaningful words written in the
// gratitude ("past") and hope ("future") notes of a journal.
package themes

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/unowned-ai/reflections/pkg/journal"
)

const (
	// DefaultLimit caps how many words the theme cloud shows.
	DefaultLimit = 40
	// DefaultMinLength is the shortest token, in runes, that can be a theme.
	DefaultMinLength = 3
)

// WordStat is one ranked word and the number of times it occurs.
type WordStat struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Extractor turns an entry collection into a ranked word list. The zero
// value is not usable; build one with New.
type Extractor struct {
	limit     int
	minLength int
	stopWords StopWords
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLimit sets the maximum number of words returned. Non-positive values
// are ignored.
func WithLimit(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithMinLength sets the minimum token length in runes. Values below 1 are
// ignored.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.minLength = n
		}
	}
}

// WithStopWords replaces the stop-word set.
func WithStopWords(s StopWords) Option {
	return func(e *Extractor) {
		if s != nil {
			e.stopWords = s
		}
	}
}

// New returns an extractor with the reference settings, adjusted by opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		limit:     DefaultLimit,
		minLength: DefaultMinLength,
		stopWords: DefaultStopWords(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Extract ranks words with the reference settings.
func Extract(entries []journal.Entry) []WordStat {
	return defaultExtractor.Extract(entries)
}

// Corpus joins the past and future notes of every entry, in order, with
// single spaces.
func Corpus(entries []journal.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Past)
		b.WriteByte(' ')
		b.WriteString(e.Future)
	}
	return b.String()
}

// Extract counts the surviving tokens and returns them by descending count.
// Words with equal counts stay in the order they first appeared. The result
// is never nil.
func (e *Extractor) Extract(entries []journal.Entry) []WordStat {
	counts := make(map[string]int)
	var order []string

	for _, token := range Tokenize(Corpus(entries)) {
		if !e.keep(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	stats := make([]WordStat, len(order))
	for i, word := range order {
		stats[i] = WordStat{Text: word, Value: counts[word]}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Value > stats[j].Value
	})

	if len(stats) > e.limit {
		stats = stats[:e.limit]
	}
	return stats
}

func (e *Extractor) keep(token string) bool {
	if token == "" || utf8.RuneCountInString(token) < e.minLength {
		return false
	}
	return !e.stopWords.Contains(token)
}
