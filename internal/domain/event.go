package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents a schedulable happening with descriptive metadata, a
// unique slug derived from its title, and a tag set used for similarity
// matching.
// swagger:model Event
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Overview    string             `bson:"overview" json:"overview"`
	Image       string             `bson:"image" json:"image"`
	Venue       string             `bson:"venue" json:"venue"`
	Location    string             `bson:"location" json:"location"`
	Date        string             `bson:"date" json:"date"` // canonical YYYY-MM-DD
	Time        string             `bson:"time" json:"time"` // canonical 24h HH:MM
	Mode        string             `bson:"mode" json:"mode"`
	Audience    string             `bson:"audience" json:"audience"`
	Agenda      []string           `bson:"agenda" json:"agenda"`
	Organizer   string             `bson:"organizer" json:"organizer"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Event fields that may be named in PrepareForSave's changed list.
const (
	FieldTitle = "title"
	FieldDate  = "date"
	FieldTime  = "time"
)

// requiredEventFields lists the required string fields in validation order.
// The first empty one is reported.
var requiredEventFields = []struct {
	name  string
	value func(*Event) string
}{
	{"title", func(e *Event) string { return e.Title }},
	{"description", func(e *Event) string { return e.Description }},
	{"overview", func(e *Event) string { return e.Overview }},
	{"image", func(e *Event) string { return e.Image }},
	{"venue", func(e *Event) string { return e.Venue }},
	{"location", func(e *Event) string { return e.Location }},
	{"date", func(e *Event) string { return e.Date }},
	{"time", func(e *Event) string { return e.Time }},
	{"mode", func(e *Event) string { return e.Mode }},
	{"audience", func(e *Event) string { return e.Audience }},
	{"organizer", func(e *Event) string { return e.Organizer }},
}

// PrepareForSave validates the event and rewrites derived fields in place.
// The write path must call it before every create or update; a returned
// error means the event must not be persisted.
//
// changed names the fields that were set on an update (FieldTitle, FieldDate,
// FieldTime); slug, date and time are only recomputed when the event is new
// or the source field changed.
func (e *Event) PrepareForSave(isNew bool, changed ...string) error {
	for _, f := range requiredEventFields {
		if strings.TrimSpace(f.value(e)) == "" {
			return NewValidationError(f.name)
		}
	}
	if !validStringSlice(e.Agenda) {
		return NewValidationError("agenda")
	}
	if !validStringSlice(e.Tags) {
		return NewValidationError("tags")
	}

	has := func(field string) bool {
		for _, c := range changed {
			if c == field {
				return true
			}
		}
		return false
	}

	if isNew || has(FieldTitle) {
		e.Slug = Slugify(e.Title)
	}
	if isNew || has(FieldDate) {
		date, err := NormalizeDate(e.Date)
		if err != nil {
			return NewValidationError("date")
		}
		e.Date = date
	}
	if isNew || has(FieldTime) {
		t, err := NormalizeTime(e.Time)
		if err != nil {
			return NewValidationError("time")
		}
		e.Time = t
	}
	return nil
}

func validStringSlice(values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lower-case, trimmed, every
// run of characters outside [a-z0-9] collapsed to a single '-', leading and
// trailing '-' stripped. Slugify is idempotent.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// dateLayouts are the accepted input layouts for event dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// NormalizeDate parses s as a calendar date and rewrites it to YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	v := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// timePattern accepts H:MM or HH:MM with an optional AM/PM suffix.
var timePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)(?:\s*([AaPp][Mm]))?$`)

// NormalizeTime rewrites a time-of-day to 24-hour zero-padded HH:MM.
// 12-hour input converts as: 12 AM -> 00, hours 1-11 with PM add 12,
// 12 PM stays 12, AM otherwise unchanged.
func NormalizeTime(s string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", errors.New("time must be HH:MM, optionally with AM/PM")
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return "", err
	}
	minutes := m[2]
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hours < 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}
	return fmt.Sprintf("%02d:%s", hours, minutes), nil
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// List returns all events ordered by creation time descending.
	List(ctx context.Context) ([]*Event, error)
	// ListSimilar returns every other event whose tag set intersects the
	// given event's tags, ordered by creation time descending.
	ListSimilar(ctx context.Context, event *Event) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// EventUpdate carries an event patch. Nil fields are left untouched.
type EventUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Overview    *string   `json:"overview"`
	Image       *string   `json:"image"`
	Venue       *string   `json:"venue"`
	Location    *string   `json:"location"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Mode        *string   `json:"mode"`
	Audience    *string   `json:"audience"`
	Agenda      *[]string `json:"agenda"`
	Organizer   *string   `json:"organizer"`
	Tags        *[]string `json:"tags"`
}

// EventService defines event-facing operations.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, slug string, update *EventUpdate) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	// ListSimilarEvents resolves the event by slug and returns all other
	// events sharing at least one tag, most recently created first. An
	// unknown slug and any store failure both yield an empty slice; the
	// query never reports an error to its caller.
	ListSimilarEvents(ctx context.Context, slug string) []*Event
}
