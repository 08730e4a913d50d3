package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft(time.Date(2025, 11, 2, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-11-02", d.Date)
	assert.Equal(t, 5, d.Mood)
	assert.Empty(t, d.MoodLabel)
	assert.Empty(t, d.Reflection)
}

func TestDraftValidate(t *testing.T) {
	base := Draft{Date: "2024-02-29", Mood: 5}

	tests := []struct {
		name    string
		mutate  func(d *Draft)
		wantErr error
	}{
		{name: "label only", mutate: func(d *Draft) { d.MoodLabel = "Calm" }},
		{name: "reflection only", mutate: func(d *Draft) { d.Reflection = "Today I learned" }},
		{name: "whitespace label counts", mutate: func(d *Draft) { d.MoodLabel = " " }},
		{name: "neither", mutate: func(d *Draft) { d.Past = "sun"; d.Future = "rain" }, wantErr: ErrEmptyEntry},
		{name: "mood low edge", mutate: func(d *Draft) { d.MoodLabel = "x"; d.Mood = 1 }},
		{name: "mood high edge", mutate: func(d *Draft) { d.MoodLabel = "x"; d.Mood = 10 }},
		{name: "mood zero", mutate: func(d *Draft) { d.MoodLabel = "x"; d.Mood = 0 }, wantErr: ErrMoodOutOfRange},
		{name: "mood eleven", mutate: func(d *Draft) { d.MoodLabel = "x"; d.Mood = 11 }, wantErr: ErrMoodOutOfRange},
		{name: "empty date allowed", mutate: func(d *Draft) { d.MoodLabel = "x"; d.Date = "" }},
		{name: "bad date", mutate: func(d *Draft) { d.MoodLabel = "x"; d.Date = "03/09/2024" }, wantErr: ErrInvalidDate},
		{name: "impossible date", mutate: func(d *Draft) { d.MoodLabel = "x"; d.Date = "2023-02-29" }, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDraftClearText(t *testing.T) {
	d := Draft{Date: "2024-01-01", Mood: 8, MoodLabel: "a", Past: "b", Future: "c", Reflection: "d"}
	assert.Equal(t, Draft{Date: "2024-01-01", Mood: 8}, d.ClearText())
}
