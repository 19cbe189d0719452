package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvitation() Invitation {
	return Invitation{
		Summary:     "Quarterly Review",
		Description: "Review of Q2 results",
		StartTime:   "2024-06-01T10:00:00+00:00",
		EndTime:     "2024-06-01T11:00:00+00:00",
		MeetingLink: "https://meet.google.com/abc-defg-hij",
		LogoUrl:     "https://example.com/logo.png",
	}
}

func TestRenderInvitation_ConvertsToKolkataTime(t *testing.T) {
	html, err := RenderInvitation(testInvitation())

	require.NoError(t, err)
	// UTC+5:30: 10:00 and 11:00 UTC become 15:30 and 16:30
	assert.Contains(t, html, "15:30:00")
	assert.Contains(t, html, "16:30:00")
	assert.Contains(t, html, "2024")
}

func TestRenderInvitation_IncludesEventDetails(t *testing.T) {
	html, err := RenderInvitation(testInvitation())

	require.NoError(t, err)
	assert.Contains(t, html, "Quarterly Review")
	assert.Contains(t, html, "Review of Q2 results")
	assert.Contains(t, html, "https://meet.google.com/abc-defg-hij")
	assert.Contains(t, html, "https://example.com/logo.png")
}

func TestRenderInvitation_OmitsJoinButtonWithoutLink(t *testing.T) {
	inv := testInvitation()
	inv.MeetingLink = ""

	html, err := RenderInvitation(inv)

	require.NoError(t, err)
	assert.NotContains(t, html, "Join Meeting")
}

func TestRenderInvitation_UnparsableStartTime(t *testing.T) {
	inv := testInvitation()
	inv.StartTime = "June 1st, 10am"

	_, err := RenderInvitation(inv)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestRenderInvitation_UnparsableEndTime(t *testing.T) {
	inv := testInvitation()
	inv.EndTime = ""

	_, err := RenderInvitation(inv)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestRenderInvitation_Deterministic(t *testing.T) {
	first, err := RenderInvitation(testInvitation())
	require.NoError(t, err)
	second, err := RenderInvitation(testInvitation())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
