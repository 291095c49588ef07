package ingestors

import (
	"errors"
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

var (
	ErrMalformedLine    = errors.New("malformed line")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// IngestionService errors
const (
	codeMalformedLine     = "ING_1000"
	codeInvalidTimestamp  = "ING_1001"
	codeUnreadableLogData = "ING_1002"
)

// errMalformedLine returns an error for a line that could not be split into the schema fields.
func errMalformedLine(lineNumber int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedLine, fmt.Sprintf("line %d: malformed log line", lineNumber), cause)
}

// errInvalidTimestamp returns an error for a line whose timestamp field does not parse.
func errInvalidTimestamp(lineNumber int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimestamp, fmt.Sprintf("line %d: invalid timestamp", lineNumber), cause)
}

// errUnreadableLogData returns an error when the log stream cannot be read or decompressed.
func errUnreadableLogData(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnreadableLogData, "log data could not be read", cause)
}

func wrapInvalidTimestamp(err error) error {
	if errors.Is(err, ErrInvalidTimestamp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
}
