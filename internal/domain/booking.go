package domain

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a visitor's request to attend an event, identified by
// email. It holds a non-owning reference to the event; the event keeps no
// back-reference to its bookings.
// swagger:model Booking
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   primitive.ObjectID `bson:"event_id" json:"event_id"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// emailPattern is a structural check only: at least one non-whitespace,
// non-@ run, an @, and a non-whitespace domain containing a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has a local@domain.tld shape.
// Callers should normalize first.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	ListByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*Booking, error)
}

// BookingService defines booking-facing operations.
type BookingService interface {
	// CreateBooking validates and persists a booking for the given event.
	// It fails with a ValidationError when the email is malformed and a
	// ReferenceError when the event does not exist at write time.
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	// ListBookingsForEvent returns the bookings for the event with the
	// given slug, most recent first.
	ListBookingsForEvent(ctx context.Context, slug string) ([]*Booking, error)
}
