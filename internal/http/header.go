package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID      = "x-request-id"
	headerContentType    = "content-type"
	headerIdempotencyKey = "idempotency-key"
	headerSessionPeriod  = "x-session-period"
	headerExcludeBots    = "x-exclude-bots"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

func sessionPeriod(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerSessionPeriod))
}

func excludeBots(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerExcludeBots))
}
