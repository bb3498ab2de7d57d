package google

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meirhorwitz/site-api/pkg/scheduling"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// maxListedEvents caps a single busy-interval listing.
const maxListedEvents = 2500

// CalendarClient implements scheduling.CalendarGateway against the Google
// Calendar API.
type CalendarClient struct {
	auth       *AuthProvider
	calendarID string
	timezone   string
	location   *time.Location
}

func NewCalendarClient(auth *AuthProvider, calendarID, timezone string) (*CalendarClient, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load location for timezone %s: %w", timezone, err)
	}
	return &CalendarClient{
		auth:       auth,
		calendarID: calendarID,
		timezone:   timezone,
		location:   location,
	}, nil
}

func (c *CalendarClient) prepareService(ctx context.Context) (*gcal.Service, error) {
	client, err := c.auth.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Google auth client: %w", err)
	}
	service, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}
	return service, nil
}

// ListBusy returns the busy intervals between from and to, sorted by start,
// with recurring events expanded to single instances. All-day events span
// whole days in the configured zone.
func (c *CalendarClient) ListBusy(ctx context.Context, from, to time.Time) ([]scheduling.BusyInterval, error) {
	service, err := c.prepareService(ctx)
	if err != nil {
		return nil, err
	}

	googleEvents, err := service.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxListedEvents).
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	busy := make([]scheduling.BusyInterval, 0, len(googleEvents.Items))
	for _, item := range googleEvents.Items {
		interval, err := c.eventToInterval(item)
		if err != nil {
			log.Warnf("skipping calendar event with unparsable times: %s: %v", item.Id, err)
			continue
		}
		busy = append(busy, interval)
	}
	return busy, nil
}

func (c *CalendarClient) eventToInterval(item *gcal.Event) (scheduling.BusyInterval, error) {
	start, err := c.parseEventTime(item.Start, false)
	if err != nil {
		return scheduling.BusyInterval{}, err
	}
	end, err := c.parseEventTime(item.End, true)
	if err != nil {
		return scheduling.BusyInterval{}, err
	}
	return scheduling.BusyInterval{Start: start, End: end}, nil
}

// parseEventTime handles both timed (dateTime) and all-day (date) events.
// All-day boundaries are normalized to the start and end of the day.
func (c *CalendarClient) parseEventTime(edt *gcal.EventDateTime, isEnd bool) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("event has no time data")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, err
		}
		return t.In(c.location), nil
	}
	day, err := time.ParseInLocation("2006-01-02", edt.Date, c.location)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999999, c.location), nil
	}
	return day, nil
}

// CreateEvent inserts the consultation event with a Google Meet conference
// request and attendee invitations. A booking still succeeds when the
// provider returns no conference link.
func (c *CalendarClient) CreateEvent(ctx context.Context, req scheduling.EventRequest) (scheduling.EventResult, error) {
	service, err := c.prepareService(ctx)
	if err != nil {
		return scheduling.EventResult{}, err
	}

	created, err := service.Events.Insert(c.calendarID, &gcal.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &gcal.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		Attendees: []*gcal.EventAttendee{
			{Email: req.Attendee},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to insert event in Google Calendar: %v", err)
		log.Error(err)
		return scheduling.EventResult{}, err
	}

	return scheduling.EventResult{
		ID:       created.Id,
		MeetLink: meetLink(created),
	}, nil
}

func meetLink(event *gcal.Event) string {
	if event.HangoutLink != "" {
		return event.HangoutLink
	}
	if event.ConferenceData != nil && len(event.ConferenceData.EntryPoints) > 0 {
		return event.ConferenceData.EntryPoints[0].Uri
	}
	return ""
}
