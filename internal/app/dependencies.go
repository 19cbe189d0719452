package app

import (
	"database/sql"

	"github.com/hynux/meetlink/internal/config"
	"github.com/hynux/meetlink/internal/event_bus"
	"github.com/hynux/meetlink/internal/utils"
	"github.com/hynux/meetlink/pkg/google"
	"github.com/hynux/meetlink/pkg/mail"
	"github.com/hynux/meetlink/pkg/meeting"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	GoogleAuth      *google.GoogleAuth
	CalendarService google.CalendarService

	MailSender mail.Sender

	MeetingRepo     meeting.Repository
	MeetingService  meeting.Service
	MeetingRecorder *meeting.Recorder
	MeetingHandler  *meeting.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	googleAuth, err := google.NewGoogleAuth(cfg)
	if err != nil {
		return nil, err
	}
	deps.GoogleAuth = googleAuth
	deps.CalendarService = google.NewCalendarService(cfg.Google)

	deps.MailSender = mail.NewSmtpSender(cfg.Smtp)

	deps.MeetingRepo = meeting.NewRepository(db)
	deps.MeetingService = meeting.NewService(deps.CalendarService, deps.MailSender, deps.MeetingRepo, deps.EventBus, cfg.Mail.LogoUrl)
	deps.MeetingRecorder = meeting.NewRecorder(deps.MeetingRepo, deps.Clock, deps.EventBus)
	deps.MeetingHandler = meeting.NewHandler(deps.MeetingService)

	return deps, nil
}
