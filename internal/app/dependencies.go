package app

import (
	"github.com/meirhorwitz/site-api/internal/config"
	"github.com/meirhorwitz/site-api/internal/utils"
	"github.com/meirhorwitz/site-api/pkg/brief"
	"github.com/meirhorwitz/site-api/pkg/google"
	"github.com/meirhorwitz/site-api/pkg/mail"
	"github.com/meirhorwitz/site-api/pkg/paypal"
	"github.com/meirhorwitz/site-api/pkg/scheduling"
)

// senderName is the display name on all outgoing email.
const senderName = "Automation by Meir"

// Dependencies holds all gateways, services, and handlers for the application.
type Dependencies struct {
	GoogleAuth     *google.AuthProvider
	CalendarClient *google.CalendarClient
	GmailSender    *google.GmailSender

	MailSender *mail.Sender

	SchedulingService *scheduling.Service
	SchedulingHandler *scheduling.Handler

	BriefService *brief.Service
	BriefHandler *brief.Handler

	PayPalClient  *paypal.Client
	PayPalHandler *paypal.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.GoogleAuth = google.NewAuthProvider(cfg.Google.ServiceAccount, cfg.Scheduling.DelegatedUser)

	calendarClient, err := google.NewCalendarClient(deps.GoogleAuth, cfg.Scheduling.CalendarID, cfg.Scheduling.Timezone)
	if err != nil {
		return nil, err
	}
	deps.CalendarClient = calendarClient
	deps.GmailSender = google.NewGmailSender(deps.GoogleAuth)

	deps.MailSender = mail.NewSender(deps.GmailSender, senderName, cfg.Scheduling.NotificationEmail)

	deps.Clock = &utils.SystemClock{}
	schedulingService, err := scheduling.NewService(deps.CalendarClient, deps.MailSender, deps.Clock, scheduling.Config{
		Timezone:               cfg.Scheduling.Timezone,
		MeetingDurationMinutes: cfg.Scheduling.MeetingDurationMinutes,
		NotificationEmail:      cfg.Scheduling.NotificationEmail,
		StartHour:              cfg.Scheduling.StartHour,
		EndHour:                cfg.Scheduling.EndHour,
	})
	if err != nil {
		return nil, err
	}
	deps.SchedulingService = schedulingService
	deps.SchedulingHandler = scheduling.NewHandler(deps.SchedulingService)

	deps.BriefService = brief.NewService(deps.MailSender, cfg.Scheduling.NotificationEmail)
	deps.BriefHandler = brief.NewHandler(deps.BriefService, cfg.Environment == "production")

	deps.PayPalClient = paypal.NewClient(cfg.PayPal.ClientID, cfg.PayPal.ClientSecret, cfg.PayPal.Live)
	deps.PayPalHandler = paypal.NewHandler(deps.PayPalClient)

	return deps, nil
}
