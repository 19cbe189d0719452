package google

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/hynux/meetlink/internal/config"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// The authenticated account's primary calendar is always the target.
	primaryCalendarId = "primary"
	// Events are always submitted with this zone, regardless of the offset
	// embedded in the request timestamps.
	eventTimezone  = "Asia/Kolkata"
	conferenceType = "hangoutsMeet"
)

// CalendarError wraps any upstream calendar API, network, or auth failure.
type CalendarError struct {
	Err error
}

func (e *CalendarError) Error() string { return e.Err.Error() }
func (e *CalendarError) Unwrap() error { return e.Err }

// ConferenceEvent describes the event to insert. Timestamps are RFC3339
// strings with UTC offset, passed through to the API verbatim.
type ConferenceEvent struct {
	Summary       string
	Description   string
	StartTime     string
	EndTime       string
	AttendeeEmail string
}

type CalendarService interface {
	InsertConferenceEvent(ctx context.Context, event ConferenceEvent) (string, error)
}

type CalendarServiceImpl struct {
	cfg config.Google
}

func NewCalendarService(cfg config.Google) *CalendarServiceImpl {
	return &CalendarServiceImpl{cfg: cfg}
}

// InsertConferenceEvent inserts the event into the primary calendar with a
// Meet conference request and returns the conference join link. An event
// stored without conference data yields an empty link, which is not an error.
func (s *CalendarServiceImpl) InsertConferenceEvent(ctx context.Context, event ConferenceEvent) (string, error) {
	service, err := gcal.NewService(ctx, option.WithTokenSource(tokenSource(ctx, s.cfg)))
	if err != nil {
		err := fmt.Errorf("unable to create Calendar client: %v", err)
		log.Error(err)
		return "", &CalendarError{Err: err}
	}

	log.Debugf("Inserting event %q into calendar %s", event.Summary, primaryCalendarId)
	result, err := service.Events.Insert(primaryCalendarId, &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.StartTime,
			TimeZone: eventTimezone,
		},
		End: &gcal.EventDateTime{
			DateTime: event.EndTime,
			TimeZone: eventTimezone,
		},
		Attendees: []*gcal.EventAttendee{
			{Email: event.AttendeeEmail},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             newConferenceRequestId(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: conferenceType},
			},
		},
	}).ConferenceDataVersion(1).Do()
	if err != nil {
		err := fmt.Errorf("unable to insert event in Google Calendar: %v", err)
		log.Error(err)
		return "", &CalendarError{Err: err}
	}

	if result.HangoutLink == "" {
		log.Warnf("event %s was created without conference data", result.Id)
	}
	return result.HangoutLink, nil
}

const (
	conferenceRequestIdAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	conferenceRequestIdLength   = 10
)

// newConferenceRequestId generates the deduplication key the Calendar API
// requires on each conference create request. Fresh per call, never stored.
func newConferenceRequestId() string {
	b := make([]byte, conferenceRequestIdLength)
	for i := range b {
		b[i] = conferenceRequestIdAlphabet[rand.IntN(len(conferenceRequestIdAlphabet))]
	}
	return string(b)
}
