package aggregators

import (
	"errors"
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

var (
	// ErrNoData is returned by a query when no session qualifies for it.
	ErrNoData = errors.New("no data")
	// ErrTimelineModeMismatch is returned when a query receives a timeline built in the wrong mode.
	ErrTimelineModeMismatch = errors.New("timeline mode mismatch")
)

const (
	codeInvalidConfiguration = "AGG_1000"
	codeNoData               = "AGG_2000"

	codeInternalSessionBuildFailed  = "AGG_9000"
	codeInternalTimelineModeInvalid = "AGG_9001"
)

// errInvalidConfiguration returns an error when the session period or mode is rejected.
func errInvalidConfiguration(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfiguration, "invalid session configuration", cause)
}

// errNoData returns an error when none of the queries has a qualifying session.
func errNoData(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnprocessableError(codeNoData, "no sessions to aggregate", cause)
}

// errInternalSessionBuildFailed returns an error when a session timeline could not be built.
func errInternalSessionBuildFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSessionBuildFailed, fmt.Errorf("sessionBuildFailed: %w", cause))
}

// errInternalTimelineModeInvalid returns an error when a query is handed a timeline of the wrong mode.
func errInternalTimelineModeInvalid(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTimelineModeInvalid, fmt.Errorf("timelineModeInvalid: %w", cause))
}
