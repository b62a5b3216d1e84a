package grading

import (
	"context"
	"strings"
	"time"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/internal/llm"
	"github.com/avasari/GraderAPI/internal/metrics"
	"github.com/avasari/GraderAPI/internal/prompt"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

// Submission carries one user action's worth of input: the selected files in
// selection order plus the provider choice and the caller's own credentials.
type Submission struct {
	StudentName string
	Files       []sessionModel.UploadedFile
	Provider    llm.ProviderKind
	Credentials llm.Credentials
}

// Service runs the whole pipeline for one submission: extraction of every
// file, one prompt, one provider call. Handlers only see this interface; the
// extraction routine and the provider factory stay private to the struct.
type Service interface {
	ProcessSubmission(ctx context.Context, session sessionModel.GradingSession, sub Submission) sessionModel.GradingSession
}

// ExtractFunc matches extract.Extract; injected so tests can stub parsing.
type ExtractFunc func(fileName string, data []byte) (string, error)

type service struct {
	extract     ExtractFunc
	newProvider llm.Factory
	logger      *logger_i.Logger
}

func NewService(extract ExtractFunc, factory llm.Factory) Service {
	return &service{
		extract:     extract,
		newProvider: factory,
		logger:      logger_i.NewLogger("Grading Service"),
	}
}

// ProcessSubmission is synchronous: it blocks until the provider answers or
// fails. A generation failure still lands the session in HAS_FEEDBACK with
// the error text stored as the feedback body; every failure in this pipeline
// is ordinary data by the time it leaves.
func (s *service) ProcessSubmission(ctx context.Context, session sessionModel.GradingSession, sub Submission) sessionModel.GradingSession {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "sessionId", session.Id)

	start := time.Now()
	defer func() { metrics.CaptureSubmissionMetrics(string(session.Status), time.Since(start)) }()

	processCtx, cancel := context.WithTimeout(ctx, config.GenerationTimeout)
	defer cancel()

	session.Status = sessionModel.StatusPending

	content := s.executeExtractionStep(log, sub.Files)

	names := fileNames(sub.Files)
	renderedPrompt := prompt.Build(content, sub.StudentName, strings.Join(names, ", "))

	feedback := s.executeGenerationStep(processCtx, log, sub, renderedPrompt)

	session.StudentName = sub.StudentName
	session.FileNames = names
	session.Feedback = feedback
	session.Status = sessionModel.StatusHasFeedback
	// first write wins: regenerating feedback keeps the original timestamp
	// until the session is cleared
	if session.GeneratedAt.IsZero() {
		session.GeneratedAt = time.Now()
	}
	return session
}

func fileNames(files []sessionModel.UploadedFile) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
