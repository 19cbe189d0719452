package meeting

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hynux/meetlink/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s}
}

type MeetingRequestDTO struct {
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	AttendeeEmail string `json:"attendeeEmail"`
}

type MeetingResultDTO struct {
	Success     bool   `json:"success"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Error       string `json:"error,omitempty"`
}

type RecordDTO struct {
	Uid           string    `json:"uid"`
	Summary       string    `json:"summary"`
	Description   string    `json:"description"`
	AttendeeEmail string    `json:"attendeeEmail"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	MeetingLink   string    `json:"meetingLink"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

const recentMeetingsLimit = 20

func (h *Handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto MeetingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	meetingLink, err := h.service.CreateMeeting(r.Context(), dtoToRequest(dto))
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid meeting request",
				Details: validationErr.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}

		log.Errorf("failed to create meeting: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(MeetingResultDTO{
			Success: false,
			Error:   err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(MeetingResultDTO{
		Success:     true,
		MeetingLink: meetingLink,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetRecentMeetings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	records, err := h.service.RecentMeetings(r.Context(), recentMeetingsLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]RecordDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, recordToDTO(record))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func dtoToRequest(dto MeetingRequestDTO) MeetingRequest {
	return MeetingRequest{
		Summary:       dto.Summary,
		Description:   dto.Description,
		StartTime:     dto.StartTime,
		EndTime:       dto.EndTime,
		AttendeeEmail: dto.AttendeeEmail,
	}
}

func recordToDTO(record Record) RecordDTO {
	return RecordDTO{
		Uid:           record.Uid,
		Summary:       record.Summary,
		Description:   record.Description,
		AttendeeEmail: record.AttendeeEmail,
		StartTime:     record.StartTime,
		EndTime:       record.EndTime,
		MeetingLink:   record.MeetingLink,
		Status:        record.Status,
		CreatedAt:     record.CreatedAt,
	}
}
