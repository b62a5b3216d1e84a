package handlers

import (
	"context"
	"sync"

	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/internal/grading"
	"github.com/avasari/GraderAPI/internal/llm"
	"github.com/avasari/GraderAPI/internal/metrics"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

var (
	handlerInstance *SessionHandler //private singleton
	once            sync.Once
	logSH           *logger_i.Logger
	logRH           *logger_i.Logger
)

type SessionHandler struct {
	service grading.Service
	store   sessionModel.SessionStore
}

func InitSessionHandler(gradingService grading.Service, sessionStore sessionModel.SessionStore) {
	once.Do(func() {
		handlerInstance = &SessionHandler{service: gradingService, store: sessionStore}

		logSH = logger_i.NewLogger("SessionHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logSH.Info("Starting session handler")
	})

}

// RunSubmission pulls the session (minting a fresh one on first contact),
// marks it pending, runs the grading pipeline to completion, and persists
// the outcome. The pipeline never returns a partial session; failures land
// as feedback text.
func RunSubmission(ctx context.Context, sessionId string, sub grading.Submission) (sessionModel.GradingSession, bool) {
	if handlerInstance == nil {
		return sessionModel.GradingSession{}, false
	}
	logSH.With("traceId", traceIdFromContext(ctx), "sessionId", sessionId)
	logSH.Info("To process new submission")

	session, found := handlerInstance.store.GetSession(ctx, sessionId)
	if !found {
		session = sessionModel.NewSession(sessionId)
		metrics.IncrementActiveSessionCount() //metrics
	}
	session.TraceId = traceIdFromContext(ctx)
	session.Status = sessionModel.StatusPending
	if err := handlerInstance.store.SaveSession(ctx, session); err != nil {
		logSH.Error("Error saving pending session", "error", err)
		return sessionModel.GradingSession{}, false
	}

	metrics.CountSubmission(string(sub.Provider)) //metrics
	session = handlerInstance.service.ProcessSubmission(ctx, session, sub)

	if err := handlerInstance.store.SaveSession(ctx, session); err != nil {
		logSH.Error("Error saving graded session", "error", err)
		return sessionModel.GradingSession{}, false
	}
	return session, true
}

func GetSession(ctx context.Context, sessionId string) (sessionModel.GradingSession, bool) {
	if handlerInstance == nil || sessionId == "" {
		return sessionModel.GradingSession{}, false
	}
	return handlerInstance.store.GetSession(ctx, sessionId)
}

func ClearSession(ctx context.Context, sessionId string) {
	if handlerInstance == nil || sessionId == "" {
		return
	}
	if _, found := handlerInstance.store.GetSession(ctx, sessionId); found {
		metrics.DecrementActiveSessionCount() //metrics
	}
	handlerInstance.store.DeleteSession(ctx, sessionId)
}

// ValidateSubmission checks the form fields before any extraction work and
// resolves the model against the provider's allow list. The api key stays
// inside the credentials for the duration of the request and is never logged.
func ValidateSubmission(studentName string, providerValue string, apiKey string, modelValue string, fileCount int) (llm.ProviderKind, string, string) {
	if handlerInstance == nil {
		return "", "", "service unavailable"
	}
	if studentName == "" {
		return "", "", "student_name is required"
	}
	if apiKey == "" {
		return "", "", "api_key is required"
	}
	if fileCount == 0 {
		return "", "", "at least one document is required"
	}

	kind, err := llm.ParseProviderKind(providerValue)
	if err != nil {
		return "", "", err.Error()
	}
	model, err := llm.ResolveModel(kind, modelValue)
	if err != nil {
		return "", "", err.Error()
	}
	return kind, model, ""
}
