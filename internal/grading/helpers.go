package grading

import (
	"context"
	"strings"
	"time"

	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/internal/metrics"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

// executeExtractionStep processes every file in selection order and joins the
// results under a separator header naming each source file. A file that fails
// to parse contributes its error description in place of content; the batch
// never aborts.
func (s *service) executeExtractionStep(log *logger_i.Logger, files []sessionModel.UploadedFile) string {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()

	var b strings.Builder
	for _, file := range files {
		text, err := s.extract(file.Name, file.Data)
		if err != nil {
			log.Warn("file extraction failed", "file", file.Name, "error", err)
			text = err.Error()
		}
		b.WriteString("\n\n--- Content from ")
		b.WriteString(file.Name)
		b.WriteString(" ---\n")
		b.WriteString(text)
	}
	return b.String()
}

// executeGenerationStep issues the single-turn provider call. Any failure -
// bad key, network, quota - becomes the stored feedback text with a fixed
// prefix; nothing propagates past this boundary.
func (s *service) executeGenerationStep(ctx context.Context, log *logger_i.Logger, sub Submission, renderedPrompt string) string {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	provider, err := s.newProvider(sub.Provider, sub.Credentials)
	if err != nil {
		log.Error("provider construction failed", "provider", sub.Provider, "error", err)
		return "Error generating feedback: " + err.Error()
	}

	answer, err := provider.Generate(ctx, renderedPrompt)
	if err != nil {
		log.Error("feedback generation failed", "provider", sub.Provider, "error", err)
		return "Error generating feedback: " + err.Error()
	}
	return answer
}
