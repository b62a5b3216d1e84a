package grading_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/internal/grading"
	"github.com/avasari/GraderAPI/internal/llm"
)

func upload(name, content string) sessionModel.UploadedFile {
	return sessionModel.UploadedFile{Name: name, Data: []byte(content), Size: int64(len(content))}
}

// echoExtract returns the file bytes as the extracted text.
func echoExtract(fileName string, data []byte) (string, error) {
	return string(data), nil
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestProcessSubmission_Scenarios(t *testing.T) {
	tests := []struct {
		name             string
		extract          grading.ExtractFunc
		setupMock        func(p *MockProvider) (factoryErr error)
		expectedStatus   sessionModel.SessionStatus
		expectedFeedback string
		feedbackPrefix   string
	}{
		{
			name:    "Success_Full_Flow",
			extract: echoExtract,
			setupMock: func(p *MockProvider) error {
				p.OnGenerate = func(ctx context.Context, prompt string) (string, error) {
					return "final feedback", nil
				}
				return nil
			},
			expectedStatus:   sessionModel.StatusHasFeedback,
			expectedFeedback: "final feedback",
		},
		{
			name:    "Failure_Generation",
			extract: echoExtract,
			setupMock: func(p *MockProvider) error {
				p.OnGenerate = func(ctx context.Context, prompt string) (string, error) {
					return "", errors.New("provider down")
				}
				return nil
			},
			expectedStatus: sessionModel.StatusHasFeedback,
			feedbackPrefix: "Error generating feedback:",
		},
		{
			name:    "Failure_Provider_Construction",
			extract: echoExtract,
			setupMock: func(p *MockProvider) error {
				return errors.New("unknown provider")
			},
			expectedStatus: sessionModel.StatusHasFeedback,
			feedbackPrefix: "Error generating feedback:",
		},
		{
			name: "Extraction_Failure_Is_Inlined",
			extract: func(fileName string, data []byte) (string, error) {
				return "", fmt.Errorf("failed to parse %s", fileName)
			},
			setupMock: func(p *MockProvider) error {
				return nil
			},
			expectedStatus:   sessionModel.StatusHasFeedback,
			expectedFeedback: "mocked feedback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProvider{}
			factoryErr := tt.setupMock(mock)
			s := grading.NewService(tt.extract, StubFactory(mock, factoryErr))

			session := sessionModel.NewSession("test-session")
			result := s.ProcessSubmission(testCtx(), session, grading.Submission{
				StudentName: "Ada",
				Files:       []sessionModel.UploadedFile{upload("a.pdf", "content A")},
				Provider:    llm.ProviderOpenAI,
				Credentials: llm.Credentials{APIKey: "sk-test", Model: "gpt-4"},
			})

			if result.Status != tt.expectedStatus {
				t.Errorf("Status got %v, want %v", result.Status, tt.expectedStatus)
			}
			if tt.expectedFeedback != "" && result.Feedback != tt.expectedFeedback {
				t.Errorf("Feedback got %q, want %q", result.Feedback, tt.expectedFeedback)
			}
			if tt.feedbackPrefix != "" && !strings.HasPrefix(result.Feedback, tt.feedbackPrefix) {
				t.Errorf("Feedback %q should start with %q", result.Feedback, tt.feedbackPrefix)
			}
		})
	}
}

func TestProcessSubmission_ConcatenationOrder(t *testing.T) {
	mock := &MockProvider{}
	s := grading.NewService(echoExtract, StubFactory(mock, nil))

	files := []sessionModel.UploadedFile{
		upload("a.pdf", "text of a"),
		upload("b.docx", "text of b"),
	}
	result := s.ProcessSubmission(testCtx(), sessionModel.NewSession("s1"), grading.Submission{
		StudentName: "Ada",
		Files:       files,
		Provider:    llm.ProviderOpenAI,
	})

	headerA := "--- Content from a.pdf ---\ntext of a"
	headerB := "--- Content from b.docx ---\ntext of b"
	idxA := strings.Index(mock.LastPrompt, headerA)
	idxB := strings.Index(mock.LastPrompt, headerB)
	if idxA < 0 || idxB < 0 {
		t.Fatalf("prompt is missing a per-file header block:\n%s", mock.LastPrompt)
	}
	if idxA > idxB {
		t.Error("files were concatenated out of selection order")
	}

	if !strings.Contains(mock.LastPrompt, "Project File: a.pdf, b.docx") {
		t.Error("file label should join all names in order")
	}
	if got, want := result.FileNames, []string{"a.pdf", "b.docx"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("stored file names %v, want %v", got, want)
	}
}

func TestProcessSubmission_InlinedExtractionError(t *testing.T) {
	mock := &MockProvider{}
	failing := func(fileName string, data []byte) (string, error) {
		if fileName == "bad.pdf" {
			return "", errors.New("failed to open pdf: corrupt stream")
		}
		return string(data), nil
	}
	s := grading.NewService(failing, StubFactory(mock, nil))

	s.ProcessSubmission(testCtx(), sessionModel.NewSession("s1"), grading.Submission{
		StudentName: "Ada",
		Files: []sessionModel.UploadedFile{
			upload("good.docx", "fine text"),
			upload("bad.pdf", "whatever"),
		},
		Provider: llm.ProviderOpenAI,
	})

	if !strings.Contains(mock.LastPrompt, "--- Content from bad.pdf ---\nfailed to open pdf: corrupt stream") {
		t.Error("extraction error was not inlined under the file's header")
	}
	if !strings.Contains(mock.LastPrompt, "fine text") {
		t.Error("healthy file content is missing; one bad file must not abort the batch")
	}
}

// The generation timestamp is captured once per session and deliberately kept
// across regenerations; only clearing the session resets it.
func TestProcessSubmission_TimestampFirstWriteWins(t *testing.T) {
	mock := &MockProvider{}
	s := grading.NewService(echoExtract, StubFactory(mock, nil))

	sub := grading.Submission{
		StudentName: "Ada",
		Files:       []sessionModel.UploadedFile{upload("a.pdf", "v1")},
		Provider:    llm.ProviderOpenAI,
	}

	first := s.ProcessSubmission(testCtx(), sessionModel.NewSession("s1"), sub)
	if first.GeneratedAt.IsZero() {
		t.Fatal("first generation must stamp the session")
	}

	second := s.ProcessSubmission(testCtx(), first, sub)
	if !second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Errorf("regeneration re-stamped the session: %v -> %v", first.GeneratedAt, second.GeneratedAt)
	}
}
