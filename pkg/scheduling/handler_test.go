package scheduling

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T, calendar *stubCalendar, gateway *stubMailGateway) *Handler {
	t.Helper()
	return NewHandler(setupServiceTest(t, calendar, gateway))
}

func TestGetSlots(t *testing.T) {
	handler := setupHandlerTest(t, &stubCalendar{}, &stubMailGateway{})

	req := httptest.NewRequest(http.MethodGet, "/slots", nil)
	w := httptest.NewRecorder()

	handler.GetSlots(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool     `json:"success"`
		Slots   []string `json:"slots"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Len(t, response.Slots, 112)
	assert.Equal(t, "2024-01-01T09:00:00Z", response.Slots[0])
}

func TestGetSlots_CalendarFailure(t *testing.T) {
	handler := setupHandlerTest(t, &stubCalendar{listErr: errors.New("boom")}, &stubMailGateway{})

	req := httptest.NewRequest(http.MethodGet, "/slots", nil)
	w := httptest.NewRecorder()

	handler.GetSlots(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "Could not retrieve slots.", response.Error)
}

func postBook(t *testing.T, handler *Handler, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Book(w, req)
	return w
}

func TestBookHandler_Success(t *testing.T) {
	calendar := &stubCalendar{meetLink: "https://meet.google.com/abc"}
	handler := setupHandlerTest(t, calendar, &stubMailGateway{})

	w := postBook(t, handler, map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"details":  "Automate my invoicing",
		"dateTime": "2024-01-02T10:00:00Z",
		"lang":     "en",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		MeetLink string `json:"meetLink"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, "Meeting scheduled successfully.", response.Message)
	assert.Equal(t, "https://meet.google.com/abc", response.MeetLink)
}

func TestBookHandler_InvalidDateTime(t *testing.T) {
	calendar := &stubCalendar{}
	handler := setupHandlerTest(t, calendar, &stubMailGateway{})

	w := postBook(t, handler, map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"details":  "Automate my invoicing",
		"dateTime": "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "Invalid dateTime provided.", response.Error)
	assert.Empty(t, calendar.created)
}

func TestBookHandler_MissingFields(t *testing.T) {
	handler := setupHandlerTest(t, &stubCalendar{}, &stubMailGateway{})

	w := postBook(t, handler, map[string]string{
		"email": "dana@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "Missing required fields.", response.Error)
}

func TestBookHandler_MailOutageStillSucceeds(t *testing.T) {
	calendar := &stubCalendar{meetLink: "https://meet.google.com/abc"}
	gateway := &stubMailGateway{sendErr: errors.New("mail provider outage")}
	handler := setupHandlerTest(t, calendar, gateway)

	w := postBook(t, handler, map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"details":  "Automate my invoicing",
		"dateTime": "2024-01-02T10:00:00Z",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
}

func TestBookHandler_CalendarFailure(t *testing.T) {
	calendar := &stubCalendar{createErr: errors.New("calendar unavailable")}
	handler := setupHandlerTest(t, calendar, &stubMailGateway{})

	w := postBook(t, handler, map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"details":  "Automate my invoicing",
		"dateTime": "2024-01-02T10:00:00Z",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "Failed to schedule meeting.", response.Error)
}
