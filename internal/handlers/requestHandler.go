package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/avasari/GraderAPI/internal/adapter"
	"github.com/avasari/GraderAPI/internal/api"
	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/internal/grading"
	"github.com/avasari/GraderAPI/internal/llm"
	"github.com/avasari/GraderAPI/internal/report"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// ProvidersHandler godoc
// @Summary      List providers and their models
// @Description  Returns the fixed provider set and the models offered for each; the first model is the default.
// @Tags         Feedback
// @Produce      json
// @Success      200  {object}  api.ProvidersResponse
// @Router       /providers [get]
func ProvidersHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.ProvidersResponse{
		Providers: map[string][]string{
			string(llm.ProviderOpenAI):    llm.Models(llm.ProviderOpenAI),
			string(llm.ProviderAnthropic): llm.Models(llm.ProviderAnthropic),
		},
	})
}

// SubmitFeedbackHandler godoc
// @Summary      Submit project documents for grading
// @Description  Receives one or more files via multipart/form-data, extracts their text, and generates grading feedback for the session.
// @Tags         Feedback
// @Accept       multipart/form-data
// @Produce      json
// @Param        student_name  formData  string  true   "The student's name"
// @Param        provider      formData  string  true   "AI provider: openai or anthropic"
// @Param        api_key       formData  string  true   "API key for the chosen provider"
// @Param        model         formData  string  false  "Model identifier; provider default when empty"
// @Param        documents     formData  file    true   "PDF, DOCX or PPTX files to grade"
// @Success      200  {object}  api.FeedbackResponse  "Feedback generated for the session"
// @Failure      400  {object}  api.FeedbackResponse  "Missing fields, unknown provider or file too large"
// @Failure      500  {object}  api.FeedbackResponse  "Session could not be persisted"
// @Router       /session/feedback [post]
func SubmitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sessionId := sessionIdFromContext(r.Context())

		err := r.ParseMultipartForm(config.MaxUploadSize)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, sessionId, "File too large or bad request")
			return
		}

		var fileHeaders []*multipartFileHeader
		if r.MultipartForm != nil {
			for _, header := range r.MultipartForm.File["documents"] {
				fileHeaders = append(fileHeaders, &multipartFileHeader{header: header})
			}
		}

		kind, model, errString := ValidateSubmission(
			r.FormValue("student_name"),
			r.FormValue("provider"),
			r.FormValue("api_key"),
			r.FormValue("model"),
			len(fileHeaders),
		)
		if errString != "" {
			logRH.Warn("Bad submission request", "error", errString)
			WriteErrorResponse(w, http.StatusBadRequest, sessionId, errString)
			return
		}

		files, errString := readUploadedFiles(fileHeaders)
		if errString != "" {
			WriteErrorResponse(w, http.StatusBadRequest, sessionId, errString)
			return
		}

		sub := grading.Submission{
			StudentName: r.FormValue("student_name"),
			Files:       files,
			Provider:    kind,
			Credentials: llm.Credentials{
				APIKey: r.FormValue("api_key"),
				Model:  model,
			},
		}

		session, ok := RunSubmission(r.Context(), sessionId, sub)
		if !ok {
			WriteErrorResponse(w, http.StatusInternalServerError, sessionId, "Could not persist session")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToFeedbackResponse(session))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// GetFeedbackHandler godoc
// @Summary      Get the session's feedback
// @Description  Returns the stored grading feedback for the caller's session, if any has been generated.
// @Tags         Feedback
// @Produce      json
// @Success      200  {object}  api.FeedbackResponse  "The session's current feedback"
// @Failure      404  {object}  api.FeedbackResponse  "No feedback in this session yet"
// @Router       /session/feedback [get]
func GetFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sessionId := sessionIdFromContext(r.Context())

		session, found := GetSession(r.Context(), sessionId)
		if !found || session.Status == sessionModel.StatusEmpty {
			WriteErrorResponse(w, http.StatusNotFound, sessionId, "No feedback in this session")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToFeedbackResponse(session))
	}
}

// ClearSessionHandler godoc
// @Summary      Clear the session
// @Description  Drops the stored feedback, student name and file list for the caller's session.
// @Tags         Feedback
// @Produce      json
// @Success      200  {object}  api.ClearSessionResponse  "Session cleared"
// @Router       /session/feedback [delete]
func ClearSessionHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sessionId := sessionIdFromContext(r.Context())

		ClearSession(r.Context(), sessionId)
		writeJsonResponse(w, http.StatusOK, adapter.ToClearResponse(sessionId))
	}
}

// DownloadReportHandler godoc
// @Summary      Download the feedback report
// @Description  Builds a Word document from the session's feedback and streams it as an attachment.
// @Tags         Report
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Success      200  {file}    file                  "The .docx report"
// @Failure      404  {object}  api.FeedbackResponse  "No feedback to export yet"
// @Failure      500  {object}  api.FeedbackResponse  "Report rendering failed"
// @Router       /session/report [get]
func DownloadReportHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sessionId := sessionIdFromContext(r.Context())

		session, found := GetSession(r.Context(), sessionId)
		if !found || session.Status != sessionModel.StatusHasFeedback {
			WriteErrorResponse(w, http.StatusNotFound, sessionId, "No feedback to export")
			return
		}

		buf, err := report.Build(session.Feedback, session.StudentName, fileLabel(session.FileNames), session.GeneratedAt)
		if err != nil {
			logRH.Error("Error building report", "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, sessionId, "Report rendering failed")
			return
		}

		w.Header().Set("Content-Type", report.MIMEType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", session.StudentName+"_feedback.docx"))
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, buf); err != nil {
			logRH.Error("Error streaming report", "error", err)
		}
	}
}
