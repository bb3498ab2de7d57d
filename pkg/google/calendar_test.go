package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
)

func testCalendarClient(t *testing.T) *CalendarClient {
	t.Helper()
	client, err := NewCalendarClient(nil, "calendar@example.com", "Asia/Jerusalem")
	require.NoError(t, err)
	return client
}

func TestNewCalendarClient_UnknownTimezone(t *testing.T) {
	_, err := NewCalendarClient(nil, "calendar@example.com", "Not/AZone")

	assert.Error(t, err)
}

func TestParseEventTime_TimedEvent(t *testing.T) {
	client := testCalendarClient(t)

	parsed, err := client.parseEventTime(&gcal.EventDateTime{DateTime: "2024-06-10T14:00:00+03:00"}, false)

	require.NoError(t, err)
	assert.Equal(t, "Asia/Jerusalem", parsed.Location().String())
	assert.True(t, parsed.Equal(time.Date(2024, 6, 10, 14, 0, 0, 0, parsed.Location())))
}

func TestParseEventTime_AllDayEvent(t *testing.T) {
	client := testCalendarClient(t)

	start, err := client.parseEventTime(&gcal.EventDateTime{Date: "2024-06-10"}, false)
	require.NoError(t, err)
	end, err := client.parseEventTime(&gcal.EventDateTime{Date: "2024-06-10"}, true)
	require.NoError(t, err)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.True(t, start.Before(end))
}

func TestParseEventTime_MissingData(t *testing.T) {
	client := testCalendarClient(t)

	_, err := client.parseEventTime(nil, false)
	assert.Error(t, err)

	_, err = client.parseEventTime(&gcal.EventDateTime{DateTime: "not-a-time"}, false)
	assert.Error(t, err)
}

func TestEventToInterval(t *testing.T) {
	client := testCalendarClient(t)

	interval, err := client.eventToInterval(&gcal.Event{
		Start: &gcal.EventDateTime{DateTime: "2024-06-10T09:00:00+03:00"},
		End:   &gcal.EventDateTime{DateTime: "2024-06-10T09:30:00+03:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, interval.End.Sub(interval.Start))
}

func TestMeetLink(t *testing.T) {
	testCases := []struct {
		name     string
		event    *gcal.Event
		expected string
	}{
		{
			name:     "hangout link preferred",
			event:    &gcal.Event{HangoutLink: "https://meet.google.com/abc"},
			expected: "https://meet.google.com/abc",
		},
		{
			name: "falls back to conference entry point",
			event: &gcal.Event{
				ConferenceData: &gcal.ConferenceData{
					EntryPoints: []*gcal.EntryPoint{{Uri: "https://meet.google.com/xyz"}},
				},
			},
			expected: "https://meet.google.com/xyz",
		},
		{
			name:     "no link available",
			event:    &gcal.Event{},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, meetLink(tc.event))
		})
	}
}
