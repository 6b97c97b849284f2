package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Go Meetup", "go-meetup"},
		{"mixed case and punctuation", "  The BIG Launch: 2025!  ", "the-big-launch-2025"},
		{"runs collapse", "a -- b __ c", "a-b-c"},
		{"leading and trailing separators", "---hello---", "hello"},
		{"already a slug", "already-a-slug", "already-a-slug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	titles := []string{
		"Go Meetup 2025",
		"  Weird!!! Title -- with symbols ##  ",
		"tech&talks",
		"",
	}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", title)
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"12:00 AM", "00:00", false},
		{"12:00 PM", "12:00", false},
		{"1:05 PM", "13:05", false},
		{"11:59 PM", "23:59", false},
		{"9:30 am", "09:30", false},
		{"09:30AM", "09:30", false},
		{"18:30", "18:30", false},
		{"0:05", "00:05", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"7:5 PM", "", true},
		{"noon", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2025-01-31", "2025-01-31", false},
		{"2025/01/31", "2025-01-31", false},
		{"January 31, 2025", "2025-01-31", false},
		{"Jan 31, 2025", "2025-01-31", false},
		{" 2025-01-31 ", "2025-01-31", false},
		{"not a date", "", true},
		{"2025-13-01", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func validEvent() *Event {
	return &Event{
		Title:       "Go Conference 2025",
		Description: "A conference about Go",
		Overview:    "Talks and workshops",
		Image:       "https://example.com/go.png",
		Venue:       "Convention Center",
		Location:    "Berlin",
		Date:        "2025-06-01",
		Time:        "9:00 AM",
		Mode:        "in-person",
		Audience:    "developers",
		Agenda:      []string{"Registration", "Keynote"},
		Organizer:   "Gophers e.V.",
		Tags:        []string{"go", "conference"},
	}
}

func TestEvent_PrepareForSave_New(t *testing.T) {
	e := validEvent()
	require.NoError(t, e.PrepareForSave(true))
	assert.Equal(t, "go-conference-2025", e.Slug)
	assert.Equal(t, "2025-06-01", e.Date)
	assert.Equal(t, "09:00", e.Time)
}

func TestEvent_PrepareForSave_RequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Event)
	}{
		{"title", func(e *Event) { e.Title = "" }},
		{"description", func(e *Event) { e.Description = "   " }},
		{"overview", func(e *Event) { e.Overview = "" }},
		{"image", func(e *Event) { e.Image = "" }},
		{"venue", func(e *Event) { e.Venue = "\t" }},
		{"location", func(e *Event) { e.Location = "" }},
		{"date", func(e *Event) { e.Date = "" }},
		{"time", func(e *Event) { e.Time = " " }},
		{"mode", func(e *Event) { e.Mode = "" }},
		{"audience", func(e *Event) { e.Audience = "" }},
		{"organizer", func(e *Event) { e.Organizer = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)
			err := e.PrepareForSave(true)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestEvent_PrepareForSave_Collections(t *testing.T) {
	e := validEvent()
	e.Tags = []string{}
	err := e.PrepareForSave(true)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "tags", validationErr.Field)

	e = validEvent()
	e.Agenda = nil
	err = e.PrepareForSave(true)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "agenda", validationErr.Field)

	e = validEvent()
	e.Tags = []string{"go", "  "}
	err = e.PrepareForSave(true)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "tags", validationErr.Field)
}

func TestEvent_PrepareForSave_InvalidDateAndTime(t *testing.T) {
	e := validEvent()
	e.Date = "sometime soon"
	err := e.PrepareForSave(true)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "date", validationErr.Field)

	e = validEvent()
	e.Time = "half past nine"
	err = e.PrepareForSave(true)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "time", validationErr.Field)
}

func TestEvent_PrepareForSave_RecomputesOnlyChangedFields(t *testing.T) {
	e := validEvent()
	require.NoError(t, e.PrepareForSave(true))

	// No changed fields: derived values stay put even if the title differs.
	e.Title = "Renamed Conference"
	require.NoError(t, e.PrepareForSave(false))
	assert.Equal(t, "go-conference-2025", e.Slug)

	// Naming the field re-derives the slug.
	require.NoError(t, e.PrepareForSave(false, FieldTitle))
	assert.Equal(t, "renamed-conference", e.Slug)

	// An invalid stored time is only re-checked when named.
	e.Time = "25:99"
	require.NoError(t, e.PrepareForSave(false))
	err := e.PrepareForSave(false, FieldTime)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "time", validationErr.Field)
}

func TestValidationError_Is(t *testing.T) {
	err := error(NewValidationError("email"))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "email", validationErr.Field)
	assert.NotEmpty(t, err.Error())
}
