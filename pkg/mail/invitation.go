package mail

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"
)

// Invitation emails always present times in this zone, independent of the
// offset carried by the request timestamps.
const invitationTimezone = "Asia/Kolkata"

//go:embed templates/invitation_email.html
var invitationTemplateSource string

var invitationTemplate = template.Must(template.New("invitation_email").Parse(invitationTemplateSource))

// FormatError indicates a timestamp that could not be parsed while rendering
// the invitation.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return e.Err.Error() }
func (e *FormatError) Unwrap() error { return e.Err }

// Invitation carries everything the email template needs. StartTime and
// EndTime are RFC3339 strings with UTC offset.
type Invitation struct {
	Summary     string
	Description string
	StartTime   string
	EndTime     string
	MeetingLink string
	LogoUrl     string
}

// RenderInvitation fills the HTML email template. Pure function of its
// inputs; deterministic given the same timestamps and zone database.
func RenderInvitation(inv Invitation) (string, error) {
	start, err := formatLocalTime(inv.StartTime)
	if err != nil {
		return "", err
	}
	end, err := formatLocalTime(inv.EndTime)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = invitationTemplate.Execute(&buf, struct {
		Summary     string
		Description string
		Start       string
		End         string
		MeetingLink string
		LogoUrl     string
	}{
		Summary:     inv.Summary,
		Description: inv.Description,
		Start:       start,
		End:         end,
		MeetingLink: inv.MeetingLink,
		LogoUrl:     inv.LogoUrl,
	})
	if err != nil {
		return "", fmt.Errorf("unable to render invitation template: %w", err)
	}
	return buf.String(), nil
}

// formatLocalTime converts an RFC3339 timestamp to the invitation zone and
// formats it as a human-readable locale string.
func formatLocalTime(value string) (string, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", &FormatError{Err: fmt.Errorf("unable to parse timestamp %q: %v", value, err)}
	}
	location, err := time.LoadLocation(invitationTimezone)
	if err != nil {
		return "", &FormatError{Err: fmt.Errorf("could not load location for timezone %s", invitationTimezone)}
	}
	return t.In(location).Format(time.ANSIC), nil
}
