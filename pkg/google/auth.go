package google

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
)

var scopes = []string{
	gcal.CalendarScope,
	gcal.CalendarEventsScope,
	gmail.GmailSendScope,
}

const clientTimeout = 30 * time.Second

// AuthProvider mints the delegated service-account HTTP client used by both
// the calendar and gmail gateways. The client is built once; concurrent first
// callers share the same initialization.
type AuthProvider struct {
	serviceAccountJSON string
	subject            string

	once   sync.Once
	client *http.Client
	err    error
}

// NewAuthProvider takes the raw service account key JSON and the user to
// impersonate via domain-wide delegation. The blob is not parsed until the
// first Client call.
func NewAuthProvider(serviceAccountJSON, subject string) *AuthProvider {
	return &AuthProvider{
		serviceAccountJSON: serviceAccountJSON,
		subject:            subject,
	}
}

// Client returns the memoized authorized HTTP client. A malformed credential
// is a permanent failure: every subsequent call returns the same error.
func (a *AuthProvider) Client(ctx context.Context) (*http.Client, error) {
	a.once.Do(func() {
		jwtConfig, err := google.JWTConfigFromJSON([]byte(a.serviceAccountJSON), scopes...)
		if err != nil {
			a.err = fmt.Errorf("service account credential is not valid JSON: %w", err)
			return
		}
		jwtConfig.Subject = a.subject

		// The client outlives the first request, so it must not inherit the
		// first caller's context.
		client := jwtConfig.Client(context.Background())
		client.Timeout = clientTimeout
		a.client = client
	})
	if a.err != nil {
		return nil, a.err
	}
	return a.client, nil
}
