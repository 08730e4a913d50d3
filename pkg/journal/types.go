package journal

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Persister when nothing has been saved yet.
	ErrNotFound = errors.New("journal not found")

	ErrEmptyEntry     = errors.New("please enter at least a mood or a reflection")
	ErrMoodOutOfRange = errors.New("mood must be between 1 and 10")
	ErrInvalidDate    = errors.New("date must be formatted as YYYY-MM-DD")

	// ErrPersistFailed wraps a Persister.Save failure. The in-memory change
	// it accompanies has already been applied.
	ErrPersistFailed = errors.New("failed to save journal")
)

const (
	MinMood     = 1
	MaxMood     = 10
	DefaultMood = 5

	// DateLayout is the calendar date format stored in Entry.Date.
	DateLayout = "2006-01-02"
)

// Entry is a single self-reflection record.
//
// Field order mirrors the saved JSON objects (id last), so files written by
// this package round-trip against earlier exports.
type Entry struct {
	Date       string `json:"date"`
	Mood       int    `json:"mood"`
	MoodLabel  string `json:"moodLabel"`
	Past       string `json:"past"`
	Future     string `json:"future"`
	Reflection string `json:"reflection"`
	ID         int64  `json:"id"`
}

// Persister loads and saves the whole entry collection.
type Persister interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}
