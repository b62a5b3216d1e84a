package handlers

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/avasari/GraderAPI/internal/adapter"
	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY).(string))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

func sessionIdFromContext(ctx context.Context) string {
	id, _ := ctx.Value(config.SESSION_ID_KEY).(string)
	return id
}

func traceIdFromContext(ctx context.Context) string {
	id, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	return id
}

type multipartFileHeader struct {
	header *multipart.FileHeader
}

// readUploadedFiles pulls every uploaded part fully into memory. Files never
// touch disk; the extraction pipeline works on the raw bytes.
func readUploadedFiles(headers []*multipartFileHeader) ([]sessionModel.UploadedFile, string) {
	files := make([]sessionModel.UploadedFile, 0, len(headers))
	for _, h := range headers {
		reader, err := h.header.Open()
		if err != nil {
			return nil, "Could not read file " + h.header.Filename
		}
		data, err := io.ReadAll(reader)
		closeErr := reader.Close()
		if err != nil || closeErr != nil {
			return nil, "Could not read file " + h.header.Filename
		}
		files = append(files, sessionModel.UploadedFile{
			Name: h.header.Filename,
			Data: data,
			Size: h.header.Size,
		})
	}
	return files, ""
}

func fileLabel(names []string) string {
	return strings.Join(names, ", ")
}
