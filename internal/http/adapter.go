package http

import (
	"encoding/json"
	"net/http"

	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/svcerrors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter turns an AppHttpHandler into a http.HandlerFunc. Errors that are not
// ServiceErrors are reported as SYS_9001.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	logger := loggers.Ctx(r.Context())
	event := logger.Debug()
	if svcErr.IsInternalError() {
		event = logger.Error().Err(svcErr.Cause)
	}
	event.
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("error_category", svcErr.Category).
		Int("status", svcErr.HttpStatusCode).
		Msg(svcErr.Message)

	_ = writeJSON(w, svcErr.HttpStatusCode, ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
