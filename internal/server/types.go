package server

import (
	"time"

	"kiddoo/internal/alert"
	"kiddoo/internal/momentum"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Message string            `json:"message"`
	Mode    string            `json:"mode,omitempty"`
	History []momentum.Record `json:"history,omitempty"`
}

// SOSRequest is the body of POST /sos/trigger. With no contacts the
// configured defaults are used.
type SOSRequest struct {
	EmergencyContacts []alert.Contact `json:"emergency_contacts,omitempty"`
}

// ErrorResponse is the error envelope, matching the analyze payload
// consumers already parse.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the health check document.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
}
