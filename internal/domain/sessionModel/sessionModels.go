package sessionModel

import (
	"context"
	"time"
)

type SessionStatus string

const (
	StatusEmpty       SessionStatus = "EMPTY"
	StatusPending     SessionStatus = "PENDING"
	StatusHasFeedback SessionStatus = "HAS_FEEDBACK"
)

// UploadedFile is a single file part taken from the submission form. The
// bytes never touch disk; the whole pipeline works on the in-memory blob.
type UploadedFile struct {
	Name string
	Data []byte
	Size int64
}

// GradingSession holds the four session-scoped slots: feedback, student name,
// file-name list and the generation timestamp. There is at most one feedback
// result per session; a new submission overwrites it in place.
type GradingSession struct {
	Id          string        `json:"id"`
	TraceId     string        `json:"trace_id"`
	Status      SessionStatus `json:"status"`
	StudentName string        `json:"student_name,omitempty"`
	FileNames   []string      `json:"file_names,omitempty"`
	Feedback    string        `json:"feedback,omitempty"`
	// GeneratedAt is captured on the first generation in the session and kept
	// as-is on regeneration. Clearing the session resets it.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	TouchedAt   time.Time `json:"touched_at,omitempty"`
}

func NewSession(id string) GradingSession {
	return GradingSession{
		Id:     id,
		Status: StatusEmpty,
	}
}

type SessionStore interface {
	GetSession(ctx context.Context, sessionId string) (GradingSession, bool)
	SaveSession(ctx context.Context, session GradingSession) error
	DeleteSession(ctx context.Context, sessionId string)
}
