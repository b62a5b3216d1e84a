package adapter

import (
	"github.com/avasari/GraderAPI/internal/api"
	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
)

func ToFeedbackResponse(session sessionModel.GradingSession) api.FeedbackResponse {
	return api.FeedbackResponse{
		SessionId:   session.Id,
		Status:      string(session.Status),
		StudentName: session.StudentName,
		FileNames:   session.FileNames,
		Feedback:    session.Feedback,
		GeneratedAt: session.GeneratedAt,
	}
}

func ToClearResponse(sessionId string) api.ClearSessionResponse {
	return api.ClearSessionResponse{
		SessionId: sessionId,
		Cleared:   true,
	}
}

func BadRequest(id string, error string, code int) api.FeedbackResponse {
	return api.FeedbackResponse{
		SessionId: id,
		Status:    string(api.SessionStatusError),
		Error: &api.SessionOutgoingError{
			Code:    code,
			Message: error,
		},
	}
}
