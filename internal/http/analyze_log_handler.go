package http

import (
	"net/http"
	"strconv"

	"session-analytics/internal/analyses"
)

// maxUploadBytes caps the size of one uploaded log.
const maxUploadBytes = 1 << 30

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AnalysisDefaults apply when a request does not override them.
type AnalysisDefaults struct {
	SessionPeriodSeconds float64
	ExcludeBots          bool
}

type analyzeLogHandler struct {
	analysisService analyses.AnalysisService
	defaults        AnalysisDefaults
}

func NewAnalyzeLogHandler(analysisService analyses.AnalysisService, defaults AnalysisDefaults) AppHttpHandler {
	return &analyzeLogHandler{
		analysisService: analysisService,
		defaults:        defaults,
	}
}

// Handle processes POST /analyses requests. The body is a plain or gzipped access log.
func (h *analyzeLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	opts, err := h.analysisOptions(r)
	if err != nil {
		return err
	}

	body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
	report, err := h.analysisService.AnalyzeUpload(r.Context(), idempotencyKey(r), body, opts)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, report)
}

func (h *analyzeLogHandler) analysisOptions(r *http.Request) (analyses.AnalysisOptions, error) {
	opts := analyses.AnalysisOptions{
		SessionPeriodSeconds: h.defaults.SessionPeriodSeconds,
		ExcludeBots:          h.defaults.ExcludeBots,
	}
	if v := sessionPeriod(r); v != "" {
		seconds, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errInvalidHeader(headerSessionPeriod, err)
		}
		opts.SessionPeriodSeconds = seconds
	}
	if v := excludeBots(r); v != "" {
		exclude, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errInvalidHeader(headerExcludeBots, err)
		}
		opts.ExcludeBots = exclude
	}
	return opts, nil
}
