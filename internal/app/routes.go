package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hynux/meetlink/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Auth bootstrap (operator-only, one-time setup)
	r.HandleFunc("/auth/google", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/oauth2callback", deps.GoogleAuth.OAuthCallback).Methods("GET")

	// Meetings
	r.HandleFunc("/create-meeting", deps.MeetingHandler.CreateMeeting).Methods("POST")
	r.HandleFunc("/api/meeting", deps.MeetingHandler.GetRecentMeetings).Methods("GET")

	// Liveness; must not touch the calendar or mail systems
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
}
