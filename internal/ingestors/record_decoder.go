package ingestors

import (
	"fmt"
	"time"

	"session-analytics/internal/models"
)

// TimestampParser turns the timestamp field into a comparable instant.
// It must fail rather than default on unparseable input.
type TimestampParser func(value string) (time.Time, error)

// ParseELBTimestamp parses RFC 3339 timestamps with optional fractional seconds,
// e.g. 2015-07-22T09:00:28.019143Z.
func ParseELBTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	return t, nil
}

type RecordDecoder interface {
	Decode(lineNumber int, tokens []string) (*models.LogRecord, error)
}

type recordDecoder struct {
	schema         models.LogSchema
	parseTimestamp TimestampParser
	timestampIdx   int
	clientIdx      int
	requestIdx     int
}

func NewRecordDecoder(schema models.LogSchema, parseTimestamp TimestampParser) (RecordDecoder, error) {
	d := &recordDecoder{
		schema:         schema,
		parseTimestamp: parseTimestamp,
		timestampIdx:   schema.IndexOf(models.FieldTimestamp),
		clientIdx:      schema.IndexOf(models.FieldClientPort),
		requestIdx:     schema.IndexOf(models.FieldRequest),
	}
	if d.timestampIdx < 0 || d.clientIdx < 0 || d.requestIdx < 0 {
		return nil, fmt.Errorf("%w: schema must contain %q, %q and %q fields",
			models.ErrInvalidConfiguration, models.FieldTimestamp, models.FieldClientPort, models.FieldRequest)
	}
	if parseTimestamp == nil {
		return nil, fmt.Errorf("%w: timestamp parser is required", models.ErrInvalidConfiguration)
	}
	return d, nil
}

func (d *recordDecoder) Decode(lineNumber int, tokens []string) (*models.LogRecord, error) {
	if len(tokens) != d.schema.Len() {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, d.schema.Len(), len(tokens))
	}

	clientKey := tokens[d.clientIdx]
	if clientKey == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrMalformedLine, models.FieldClientPort)
	}
	request := tokens[d.requestIdx]
	if request == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrMalformedLine, models.FieldRequest)
	}

	timestamp, err := d.parseTimestamp(tokens[d.timestampIdx])
	if err != nil {
		return nil, wrapInvalidTimestamp(err)
	}

	fields := make([]string, len(tokens))
	copy(fields, tokens)
	return models.NewLogRecord(lineNumber, timestamp, clientKey, request, fields, d.schema), nil
}
