package api

import "time"

type SessionExternalStatus string

const (
	SessionStatusError SessionExternalStatus = "Error"
)

type FeedbackResponse struct {
	SessionId   string                `json:"session_id" example:"b7a1c2d3"`
	Status      string                `json:"status" example:"HAS_FEEDBACK"`
	StudentName string                `json:"student_name,omitempty" example:"Ada Lovelace"`
	FileNames   []string              `json:"file_names,omitempty"`
	Feedback    string                `json:"feedback,omitempty"`
	GeneratedAt time.Time             `json:"generated_at,omitempty"`
	Error       *SessionOutgoingError `json:"error,omitempty"`
}

type SessionOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"student_name is required"`
}

type ClearSessionResponse struct {
	SessionId string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}

type ProvidersResponse struct {
	Providers map[string][]string `json:"providers"`
}
