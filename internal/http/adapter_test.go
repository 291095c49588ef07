package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"session-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlingAdapter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedCategory string
		expectedCode     string
		expectedMessage  string
	}{
		{
			name:             "invalid header",
			err:              errInvalidHeader(headerSessionPeriod, assert.AnError),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "invalid_argument",
			expectedCode:     "HTTP_1000",
			expectedMessage:  "invalid x-session-period header",
		},
		{
			name:             "no data",
			err:              svcerrors.NewUnprocessableError("AGG_2000", "no sessions to aggregate", nil),
			expectedStatus:   http.StatusUnprocessableEntity,
			expectedCategory: "unprocessable",
			expectedCode:     "AGG_2000",
			expectedMessage:  "no sessions to aggregate",
		},
		{
			name:             "upload conflict",
			err:              svcerrors.NewResourceConflictError("ANL_1002", "upload already exists", nil),
			expectedStatus:   http.StatusConflict,
			expectedCategory: "resource_conflict",
			expectedCode:     "ANL_1002",
			expectedMessage:  "upload already exists",
		},
		{
			name:             "internal error hides message",
			err:              svcerrors.NewInternalError("ANL_9000", assert.AnError),
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "ANL_9000",
			expectedMessage:  "internal server error",
		},
		{
			name:             "plain error becomes undefined",
			err:              assert.AnError,
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "SYS_9001",
			expectedMessage:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := errorHandlingAdapter(&testHandler{
				handleFunc: func(w http.ResponseWriter, r *http.Request) error {
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/analyses", nil)
			reqID := "req-" + tt.expectedCode
			req.Header.Set(headerRequestID, reqID)

			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, req.ProtoMajor)
			handler.ServeHTTP(appWriter, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedCode, appWriter.ErrorCode())

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))

			assert.Equal(t, reqID, errorResponse.RequestID)
			assert.Equal(t, tt.expectedCategory, errorResponse.ErrorCategory)
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorResponse.ErrorDescription)
		})
	}
}

func TestErrorHandlingAdapter_NoError(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("success"))
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", rr.Body.String())
}

// testHandler adapts a function to AppHttpHandler.
type testHandler struct {
	handleFunc func(w http.ResponseWriter, r *http.Request) error
}

func (h *testHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return h.handleFunc(w, r)
}
