package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/meirhorwitz/site-api/internal/utils"
	"github.com/meirhorwitz/site-api/pkg/mail"
	log "github.com/sirupsen/logrus"
)

// Config carries the business parameters of the scheduling flow.
type Config struct {
	Timezone               string
	MeetingDurationMinutes int
	NotificationEmail      string
	StartHour              int
	EndHour                int
}

// Service coordinates slot listing and the booking transaction. The calendar
// event is the authoritative side effect; emails are best-effort
// notifications layered on top.
type Service struct {
	calendar CalendarGateway
	mailer   *mail.Sender
	clock    utils.Clock
	cfg      Config
	location *time.Location
}

func NewService(calendar CalendarGateway, mailer *mail.Sender, clock utils.Clock, cfg Config) (*Service, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load location for timezone %s: %w", cfg.Timezone, err)
	}
	return &Service{
		calendar: calendar,
		mailer:   mailer,
		clock:    clock,
		cfg:      cfg,
		location: location,
	}, nil
}

func (s *Service) slotConfig() SlotConfig {
	return SlotConfig{
		StartHour:       s.cfg.StartHour,
		EndHour:         s.cfg.EndHour,
		DurationMinutes: s.cfg.MeetingDurationMinutes,
		Location:        s.location,
	}
}

// AvailableSlots returns the bookable meeting starts over the lookahead
// window as RFC3339 strings in the configured timezone.
func (s *Service) AvailableSlots(ctx context.Context) ([]string, error) {
	now := s.clock.Now().In(s.location)
	windowEnd := endOfDay(now.AddDate(0, 0, lookaheadDays), s.location)

	busy, err := s.calendar.ListBusy(ctx, now, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list busy intervals: %w", err)
	}

	slots := GenerateSlots(now, busy, s.slotConfig())
	formatted := make([]string, 0, len(slots))
	for _, slot := range slots {
		formatted = append(formatted, slot.Format(time.RFC3339))
	}
	return formatted, nil
}

// Book validates the request, creates the calendar event, and sends the two
// notification emails. Email failures are logged and never fail the booking.
func (s *Service) Book(ctx context.Context, req BookingRequest) (BookingResult, error) {
	if req.Name == "" || req.Email == "" || req.Details == "" || req.DateTime == "" {
		return BookingResult{}, invalidRequest("Missing required fields.")
	}

	startTime, err := parseDateTime(req.DateTime, s.location)
	if err != nil {
		return BookingResult{}, invalidRequest("Invalid dateTime provided.")
	}
	endTime := startTime.Add(time.Duration(s.cfg.MeetingDurationMinutes) * time.Minute)

	result, err := s.calendar.CreateEvent(ctx, EventRequest{
		Summary:     fmt.Sprintf("Consultation: %s", req.Name),
		Description: fmt.Sprintf("Project Details:\n\n%s\n\nClient Email: %s", req.Details, req.Email),
		Start:       startTime,
		End:         endTime,
		Attendee:    req.Email,
	})
	if err != nil {
		return BookingResult{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	payload := EmailPayload{
		Name:     req.Name,
		Email:    req.Email,
		Details:  req.Details,
		Start:    startTime,
		MeetLink: result.MeetLink,
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:       req.Email,
		Subject:  confirmationSubject[req.Lang],
		HTMLBody: confirmationContent[req.Lang](payload, s.cfg.Timezone, s.cfg.MeetingDurationMinutes),
	}); err != nil {
		log.Errorf("failed to send confirmation email: %v", err)
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:       s.cfg.NotificationEmail,
		Subject:  fmt.Sprintf("New Project Inquiry from %s", req.Name),
		HTMLBody: notificationContent(payload, s.cfg.MeetingDurationMinutes),
	}); err != nil {
		log.Errorf("failed to send notification email: %v", err)
	}

	return BookingResult{MeetLink: result.MeetLink}, nil
}

// parseDateTime accepts ISO timestamps with or without a UTC offset; offsets
// are honored, offset-less values are interpreted in the configured zone.
func parseDateTime(value string, location *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(location), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, location)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func endOfDay(t time.Time, location *time.Location) time.Time {
	day := t.In(location)
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999999, location)
}
