package meeting

import (
	netmail "net/mail"
	"strings"
	"time"
)

const (
	StatusSent        = "sent"
	StatusEmailFailed = "email_failed"
)

// MeetingRequest is the inbound shape of a meeting-creation call. StartTime
// and EndTime are RFC3339 timestamps with UTC offset.
type MeetingRequest struct {
	Summary       string
	Description   string
	StartTime     string
	EndTime       string
	AttendeeEmail string
}

// ValidationError lists everything wrong with a request. Returned before any
// external call is made.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid meeting request: " + strings.Join(e.Problems, "; ")
}

func (r MeetingRequest) Validate() error {
	var problems []string
	if r.Summary == "" {
		problems = append(problems, "summary is required")
	}
	if r.Description == "" {
		problems = append(problems, "description is required")
	}
	if r.StartTime == "" {
		problems = append(problems, "startTime is required")
	} else if _, err := time.Parse(time.RFC3339, r.StartTime); err != nil {
		problems = append(problems, "startTime must be an RFC3339 timestamp with offset")
	}
	if r.EndTime == "" {
		problems = append(problems, "endTime is required")
	} else if _, err := time.Parse(time.RFC3339, r.EndTime); err != nil {
		problems = append(problems, "endTime must be an RFC3339 timestamp with offset")
	}
	if r.AttendeeEmail == "" {
		problems = append(problems, "attendeeEmail is required")
	} else if _, err := netmail.ParseAddress(r.AttendeeEmail); err != nil {
		problems = append(problems, "attendeeEmail must be a valid email address")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Record is one row of meeting history.
type Record struct {
	Uid           string
	Summary       string
	Description   string
	AttendeeEmail string
	StartTime     time.Time
	EndTime       time.Time
	MeetingLink   string
	Status        string
	CreatedAt     time.Time
}
