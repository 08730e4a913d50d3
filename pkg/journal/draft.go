package journal

import (
	"fmt"
	"time"
)

// Draft holds the user-editable fields of an entry before it is saved.
type Draft struct {
	Date       string `json:"date"`
	Mood       int    `json:"mood"`
	MoodLabel  string `json:"moodLabel"`
	Past       string `json:"past"`
	Future     string `json:"future"`
	Reflection string `json:"reflection"`
}

// NewDraft returns the blank form state: today's date and a neutral mood.
func NewDraft(now time.Time) Draft {
	return Draft{
		Date: now.Format(DateLayout),
		Mood: DefaultMood,
	}
}

// Validate reports why the draft cannot be saved. Text is not trimmed, so a
// label made only of spaces still counts as present.
func (d Draft) Validate() error {
	if d.MoodLabel == "" && d.Reflection == "" {
		return ErrEmptyEntry
	}
	if d.Mood < MinMood || d.Mood > MaxMood {
		return fmt.Errorf("%w: got %d", ErrMoodOutOfRange, d.Mood)
	}
	if d.Date != "" {
		if _, err := time.Parse(DateLayout, d.Date); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d.Date)
		}
	}
	return nil
}

// ClearText resets the text fields and keeps date and mood, which is how the
// entry form looks right after a successful save.
func (d Draft) ClearText() Draft {
	d.MoodLabel = ""
	d.Past = ""
	d.Future = ""
	d.Reflection = ""
	return d
}

func (d Draft) entry(id int64) Entry {
	return Entry{
		Date:       d.Date,
		Mood:       d.Mood,
		MoodLabel:  d.MoodLabel,
		Past:       d.Past,
		Future:     d.Future,
		Reflection: d.Reflection,
		ID:         id,
	}
}
