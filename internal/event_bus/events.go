package event_bus

import "time"

const MeetingCreatedEvent EventType = "meeting.created"

// MeetingCreated is published after a calendar event was successfully
// inserted, whatever the outcome of the invitation email.
type MeetingCreated struct {
	Uid           string
	Summary       string
	Description   string
	AttendeeEmail string
	StartTime     time.Time
	EndTime       time.Time
	MeetingLink   string
	// Status is "sent" when the invitation email went out, "email_failed"
	// when the event exists but the notification did not.
	Status string
}
