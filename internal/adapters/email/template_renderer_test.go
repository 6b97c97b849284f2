package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/internal/domain"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	renderer := NewTemplateRenderer()
	data := &domain.BookingConfirmationEmailData{
		Email:      "user@example.com",
		EventTitle: "Go Conference 2025",
		EventDate:  "2025-06-01",
		EventTime:  "09:00",
		Venue:      "Convention Center",
		Location:   "Berlin",
	}

	subject, html, text, err := renderer.Render("booking_confirmation", data)
	require.NoError(t, err)

	assert.Contains(t, subject, "Go Conference 2025")
	assert.Contains(t, html, "Go Conference 2025")
	assert.Contains(t, html, "2025-06-01")
	assert.Contains(t, text, "09:00")
	assert.Contains(t, text, "Convention Center")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer := NewTemplateRenderer()
	_, _, _, err := renderer.Render("does_not_exist", nil)
	require.Error(t, err)
}
