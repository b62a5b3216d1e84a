package middleware

import (
	"context"
	"net"
	"net/http"

	"github.com/avasari/GraderAPI/internal/adapter/utils"
	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/handlers"
)

func injectTrace(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Injecting trace middleware")
	req := re.req
	if req == nil {
		//this is a bad request
		re.badRequest.httpCode = http.StatusBadRequest
		re.badRequest.errorMessage = "request is empty"
		re.badRequest.isBadRequest = true
		return re
	}
	trace := req.Header.Get("X-Trace-Id")
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(`X-Trace-Id`, trace)
	re.req = req.WithContext(ctx)

	re.logger.Debug("trace middleware injected")
	return re
}

// injectSession reads the session cookie, minting a fresh id when the
// browser shows up without one, and places the id on the request context.
// The cookie is the only session handle; there is no login.
func injectSession(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Injecting session middleware")

	var sessionId string
	cookie, err := re.req.Cookie(config.SessionCookieName)
	if err == nil && cookie.Value != "" {
		sessionId = cookie.Value
	} else {
		sessionId = utils.GetNewUUID()
		http.SetCookie(re.writer, &http.Cookie{
			Name:     config.SessionCookieName,
			Value:    sessionId,
			Path:     "/",
			MaxAge:   int(config.SessionMaxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	re.logger = re.logger.With("sessionId", sessionId)
	ctx := context.WithValue(re.req.Context(), config.SESSION_ID_KEY, sessionId)
	re.req = re.req.WithContext(ctx)

	re.logger.Debug("session middleware injected")
	return re
}

func rateLimiter(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Rate limiter middleware")
	ip, _, err := net.SplitHostPort(re.req.RemoteAddr)
	if err != nil {
		ip = re.req.RemoteAddr
	}

	if !limiterInstance.GetLimiter(ip).Allow() {
		re.logger.Error("Too many requests", "Rate Limiter exceeded", ip)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			errorMessage: "Rate limit exceeded. Slow down bruh",
		}
		return re
	}
	re.logger.Debug("Rate limiter middleware authorized")
	return re
}

func handleBadRequest(re requestResponseStruct) bool {
	if re.badRequest.isBadRequest {
		re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", re.req.RemoteAddr)
		handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, "Your IP: "+re.req.RemoteAddr, re.badRequest.errorMessage)
		return false
	}
	return true
}
