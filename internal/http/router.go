package http

import (
	"net/http"

	"session-analytics/internal/analyses"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analysisService analyses.AnalysisService, defaults AnalysisDefaults, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	analyzeLogHandler := NewAnalyzeLogHandler(analysisService, defaults)

	router.Post("/analyses", errorHandlingAdapter(analyzeLogHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
