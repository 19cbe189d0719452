package meeting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hynux/meetlink/internal/event_bus"
	"github.com/hynux/meetlink/pkg/google"
	"github.com/hynux/meetlink/pkg/mail"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	CreateMeeting(ctx context.Context, req MeetingRequest) (string, error)
	RecentMeetings(ctx context.Context, limit int) ([]Record, error)
}

// ServiceImpl drives the meeting pipeline: validate, insert the calendar
// event, render and send the invitation email. The sequence is linear with no
// retries; at most one insert attempt and one email per request.
type ServiceImpl struct {
	calendar google.CalendarService
	sender   mail.Sender
	repo     Repository
	bus      *event_bus.EventBus
	logoUrl  string
}

func NewService(calendar google.CalendarService, sender mail.Sender, repo Repository, bus *event_bus.EventBus, logoUrl string) *ServiceImpl {
	return &ServiceImpl{
		calendar: calendar,
		sender:   sender,
		repo:     repo,
		bus:      bus,
		logoUrl:  logoUrl,
	}
}

// CreateMeeting returns the conference join link of the created event. When
// the calendar insert fails no email is attempted. When the email fails after
// a successful insert, the error is returned and the event is left in place;
// there is no rollback.
func (s *ServiceImpl) CreateMeeting(ctx context.Context, req MeetingRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	meetingLink, err := s.calendar.InsertConferenceEvent(ctx, google.ConferenceEvent{
		Summary:       req.Summary,
		Description:   req.Description,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		AttendeeEmail: req.AttendeeEmail,
	})
	if err != nil {
		return "", err
	}

	status := StatusSent
	notifyErr := s.sendInvitation(ctx, req, meetingLink)
	if notifyErr != nil {
		status = StatusEmailFailed
	}

	s.publishMeetingCreated(ctx, req, meetingLink, status)

	if notifyErr != nil {
		return "", notifyErr
	}
	return meetingLink, nil
}

func (s *ServiceImpl) sendInvitation(ctx context.Context, req MeetingRequest, meetingLink string) error {
	html, err := mail.RenderInvitation(mail.Invitation{
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MeetingLink: meetingLink,
		LogoUrl:     s.logoUrl,
	})
	if err != nil {
		log.Errorf("unable to render invitation for %q: %v", req.Summary, err)
		return err
	}
	return s.sender.Send(ctx, mail.Email{
		To:       req.AttendeeEmail,
		Subject:  "Meeting Invitation: " + req.Summary,
		HtmlBody: html,
	})
}

// publishMeetingCreated hands the outcome to history recording. Best-effort:
// a failing subscriber is logged and the response to the caller is unchanged.
func (s *ServiceImpl) publishMeetingCreated(ctx context.Context, req MeetingRequest, meetingLink, status string) {
	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	e := event_bus.NewEvent(ctx, event_bus.MeetingCreatedEvent, event_bus.MeetingCreated{
		Uid:           uuid.NewString(),
		Summary:       req.Summary,
		Description:   req.Description,
		AttendeeEmail: req.AttendeeEmail,
		StartTime:     startTime,
		EndTime:       endTime,
		MeetingLink:   meetingLink,
		Status:        status,
	})
	if err := s.bus.Publish(e); err != nil {
		log.Errorf("failed to record created meeting: %v", err)
	}
}

func (s *ServiceImpl) RecentMeetings(ctx context.Context, limit int) ([]Record, error) {
	return s.repo.GetRecent(ctx, limit)
}
