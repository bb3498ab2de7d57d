package google

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender implements mail.Gateway by sending raw messages through the
// Gmail API as the delegated user.
type GmailSender struct {
	auth *AuthProvider
}

func NewGmailSender(auth *AuthProvider) *GmailSender {
	return &GmailSender{auth: auth}
}

func (g *GmailSender) SendRaw(ctx context.Context, raw string) error {
	client, err := g.auth.Client(ctx)
	if err != nil {
		return fmt.Errorf("unable to retrieve Google auth client: %w", err)
	}
	service, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Gmail client: %v", err)
		log.Error(err)
		return err
	}

	_, err = service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to send message via Gmail: %v", err)
		log.Error(err)
		return err
	}
	return nil
}
