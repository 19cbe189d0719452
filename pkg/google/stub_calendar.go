package google

import "context"

// StubCalendarService records insert calls for tests. An optional Err makes
// every insert fail the way an upstream calendar failure would.
type StubCalendarService struct {
	Inserted    []ConferenceEvent
	MeetingLink string
	Err         error
}

func NewStubCalendarService(meetingLink string) *StubCalendarService {
	return &StubCalendarService{MeetingLink: meetingLink}
}

func (s *StubCalendarService) InsertConferenceEvent(_ context.Context, event ConferenceEvent) (string, error) {
	if s.Err != nil {
		return "", &CalendarError{Err: s.Err}
	}
	s.Inserted = append(s.Inserted, event)
	return s.MeetingLink, nil
}

func (s *StubCalendarService) Cleanup() {
	s.Inserted = nil
	s.Err = nil
}
