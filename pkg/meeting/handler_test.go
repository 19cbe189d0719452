package meeting

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hynux/meetlink/internal/event_bus"
	"github.com/hynux/meetlink/internal/utils"
	"github.com/hynux/meetlink/pkg/google"
	"github.com/hynux/meetlink/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest() (*Handler, *google.StubCalendarService, *mail.StubSender, *StubRepository) {
	calendarStub := google.NewStubCalendarService("https://meet.google.com/abc-defg-hij")
	senderStub := mail.NewStubSender()
	repoStub := NewStubRepository()
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: fixedNow}

	service := NewService(calendarStub, senderStub, repoStub, bus, "https://example.com/logo.png")
	NewRecorder(repoStub, clock, bus)

	return NewHandler(service), calendarStub, senderStub, repoStub
}

func postCreateMeeting(t *testing.T, handler *Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/create-meeting", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.CreateMeeting(w, req)
	return w
}

func TestCreateMeetingHandler_Success(t *testing.T) {
	handler, _, senderStub, _ := setupHandlerTest()

	body, err := json.Marshal(MeetingRequestDTO{
		Summary:       "Quarterly Review",
		Description:   "Review of Q2 results",
		StartTime:     "2024-06-01T10:00:00+00:00",
		EndTime:       "2024-06-01T11:00:00+00:00",
		AttendeeEmail: "attendee@example.com",
	})
	require.NoError(t, err)

	w := postCreateMeeting(t, handler, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var result MeetingResultDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", result.MeetingLink)
	assert.Empty(t, result.Error)

	require.Len(t, senderStub.Sent, 1)
	assert.Equal(t, "attendee@example.com", senderStub.Sent[0].To)
}

func TestCreateMeetingHandler_MalformedBody(t *testing.T) {
	handler, calendarStub, _, _ := setupHandlerTest()

	w := postCreateMeeting(t, handler, []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	assert.Equal(t, "Invalid request body", errResponse.Error)
	assert.Empty(t, calendarStub.Inserted)
}

func TestCreateMeetingHandler_MissingFields(t *testing.T) {
	handler, calendarStub, senderStub, _ := setupHandlerTest()

	w := postCreateMeeting(t, handler, []byte(`{"summary":"Standup"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	assert.Equal(t, "Invalid meeting request", errResponse.Error)
	assert.Contains(t, errResponse.Details, "attendeeEmail is required")

	// Rejected before any external call
	assert.Empty(t, calendarStub.Inserted)
	assert.Empty(t, senderStub.Sent)
}

func TestCreateMeetingHandler_CalendarFailure(t *testing.T) {
	handler, calendarStub, _, _ := setupHandlerTest()
	calendarStub.Err = errors.New("invalid_grant: token has been revoked")

	body, err := json.Marshal(MeetingRequestDTO{
		Summary:       "Quarterly Review",
		Description:   "Review of Q2 results",
		StartTime:     "2024-06-01T10:00:00+00:00",
		EndTime:       "2024-06-01T11:00:00+00:00",
		AttendeeEmail: "attendee@example.com",
	})
	require.NoError(t, err)

	w := postCreateMeeting(t, handler, body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result MeetingResultDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid_grant")
	assert.Empty(t, result.MeetingLink)
}

func TestGetRecentMeetings(t *testing.T) {
	handler, _, _, repoStub := setupHandlerTest()
	repoStub.Records = []Record{
		{
			Uid:           "uid-1",
			Summary:       "Quarterly Review",
			AttendeeEmail: "attendee@example.com",
			StartTime:     time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2024, time.June, 1, 11, 0, 0, 0, time.UTC),
			MeetingLink:   "https://meet.google.com/abc-defg-hij",
			Status:        StatusSent,
			CreatedAt:     fixedNow,
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/meeting", nil)
	w := httptest.NewRecorder()
	handler.GetRecentMeetings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var dtos []RecordDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, "uid-1", dtos[0].Uid)
	assert.Equal(t, StatusSent, dtos[0].Status)
}
