package analyses

import (
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeInvalidConfiguration  = "ANL_1000"
	codeEmptyUpload           = "ANL_1001"
	codeUploadAlreadyAnalyzed = "ANL_1002"

	codeInternalLogUploadStoreFailed = "ANL_9000"
)

// errInvalidConfiguration returns an error when analysis options are rejected before any line is read.
func errInvalidConfiguration(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfiguration, msg, cause)
}

// errEmptyUpload returns an error when an upload carries no log data.
func errEmptyUpload() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeEmptyUpload, "empty request body", nil)
}

// errUploadAlreadyAnalyzed returns an error when an idempotency key has already been used.
func errUploadAlreadyAnalyzed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeUploadAlreadyAnalyzed, "log upload already analyzed", cause)
}

// errInternalLogUploadStoreFailed returns an error when a log upload store operation fails.
func errInternalLogUploadStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogUploadStoreFailed, fmt.Errorf("logUploadStoreFailed: %w", cause))
}
