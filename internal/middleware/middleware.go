package middleware

import (
	"net/http"
	"strconv"

	"github.com/avasari/GraderAPI/internal/handlers"
	"github.com/avasari/GraderAPI/internal/metrics"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var GetHandler = Wrap(handlers.GetHandler)
var ProvidersHandler = Wrap(handlers.ProvidersHandler)

var SubmitFeedbackHandler = Wrap(handlers.SubmitFeedbackHandler)
var GetFeedbackHandler = Wrap(handlers.GetFeedbackHandler)
var ClearSessionHandler = Wrap(handlers.ClearSessionHandler)
var DownloadReportHandler = Wrap(handlers.DownloadReportHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re = injectSession(re)
	re = rateLimiter(re)

	return re
}
