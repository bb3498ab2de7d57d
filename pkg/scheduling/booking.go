package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Language selects the localized template set for requester-facing email.
// Operator notifications are always English.
type Language int

const (
	English Language = iota
	Hebrew
)

// ParseLanguage maps the wire value of the "lang" field. Unknown or empty
// values fall back to English, matching the booking form default.
func ParseLanguage(s string) Language {
	if s == "he" {
		return Hebrew
	}
	return English
}

// BookingRequest is a consultation booking as submitted by the client.
// DateTime is kept as the raw wire string; the service parses it in the
// configured timezone so validation failures never reach the calendar.
type BookingRequest struct {
	Name     string
	Email    string
	Details  string
	DateTime string
	Lang     Language
}

// BookingResult carries the data the client needs after a successful booking.
// MeetLink is empty (never absent) when the provider returned no conference
// link.
type BookingResult struct {
	MeetLink string
}

// EventRequest describes the calendar event to create for a booking.
type EventRequest struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendee    string
}

// EventResult is what the calendar provider reports back on creation.
type EventResult struct {
	ID       string
	MeetLink string
}

// CalendarGateway is the external calendar provider boundary.
type CalendarGateway interface {
	// ListBusy returns busy intervals between from and to, sorted by start,
	// with recurring events expanded to single instances.
	ListBusy(ctx context.Context, from, to time.Time) ([]BusyInterval, error)
	// CreateEvent creates an event with a generated video-conference link
	// requested. A missing link is not an error.
	CreateEvent(ctx context.Context, req EventRequest) (EventResult, error)
}

// ErrInvalidRequest marks client-supplied data that failed validation. It is
// surfaced as a 400 and never retried.
var ErrInvalidRequest = errors.New("invalid request")

func invalidRequest(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, message)
}

// RequestMessage extracts the human-readable reason from an ErrInvalidRequest.
func RequestMessage(err error) string {
	if rest, ok := strings.CutPrefix(err.Error(), ErrInvalidRequest.Error()+": "); ok {
		return rest
	}
	return err.Error()
}
