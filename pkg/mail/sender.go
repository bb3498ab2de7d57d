package mail

import (
	"context"
	"fmt"
)

// Gateway is the external send-mail boundary. It receives fully encoded
// URL-safe base64 raw payloads.
type Gateway interface {
	SendRaw(ctx context.Context, raw string) error
}

// Sender builds and dispatches outgoing messages through a Gateway.
type Sender struct {
	gateway Gateway
	from    string
}

// NewSender creates a Sender whose messages carry the given display name and
// sender address in the From header.
func NewSender(gateway Gateway, fromName, fromAddress string) *Sender {
	return &Sender{
		gateway: gateway,
		from:    fmt.Sprintf("%s <%s>", fromName, fromAddress),
	}
}

// Send encodes the message and hands it to the gateway. Errors are returned
// to the caller; both the booking and brief flows treat them as best-effort.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	raw := EncodeRaw(s.from, msg)
	if err := s.gateway.SendRaw(ctx, raw); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", msg.To, err)
	}
	return nil
}
