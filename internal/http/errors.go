package http

import (
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidHeader = "HTTP_1000"
)

// errInvalidHeader returns an error when an analysis header cannot be parsed.
func errInvalidHeader(header string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidHeader, fmt.Sprintf("invalid %s header", header), cause)
}
