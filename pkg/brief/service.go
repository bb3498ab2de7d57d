package brief

import (
	"context"
	"fmt"

	"github.com/meirhorwitz/site-api/pkg/mail"
	log "github.com/sirupsen/logrus"
)

// Submission is a validated project brief ready to be mailed out.
type Submission struct {
	Name        string
	Email       string
	Brief       string
	Attachments []mail.Attachment
}

// Service turns a brief submission into its two outgoing emails: a
// confirmation to the submitter and a notification (with the uploaded files
// attached) to the operator. Both sends are best-effort.
type Service struct {
	mailer            *mail.Sender
	notificationEmail string
}

func NewService(mailer *mail.Sender, notificationEmail string) *Service {
	return &Service{mailer: mailer, notificationEmail: notificationEmail}
}

func (s *Service) Submit(ctx context.Context, sub Submission) {
	if err := s.mailer.Send(ctx, mail.Message{
		To:       sub.Email,
		Subject:  "We Received Your Project Brief!",
		HTMLBody: confirmationContent(sub.Name, sub.Brief),
	}); err != nil {
		log.Errorf("failed to send brief confirmation email: %v", err)
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:          s.notificationEmail,
		Subject:     fmt.Sprintf("New Project Brief from %s", sub.Name),
		HTMLBody:    notificationContent(sub.Name, sub.Email, sub.Brief, len(sub.Attachments)),
		Attachments: sub.Attachments,
	}); err != nil {
		log.Errorf("failed to send brief notification email: %v", err)
	}
}
