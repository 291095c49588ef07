package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/metrics"
	"session-analytics/internal/shared/svcerrors"
)

// IngestResult holds the decoded records of one log stream in input order.
type IngestResult struct {
	Records        []*models.LogRecord
	LineCount      int
	RecoveredLines int // lines split by the request-line recovery strategy
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest decodes every line of r. The first malformed line or bad timestamp aborts the whole run.
	Ingest(ctx context.Context, r io.Reader) (*IngestResult, error)
	// IngestFile opens path and ingests it.
	IngestFile(ctx context.Context, path string) (*IngestResult, error)
}

type ingestionService struct {
	logReader     LogReader
	lineTokenizer LineTokenizer
	recordDecoder RecordDecoder
}

func NewIngestionService(logReader LogReader, lineTokenizer LineTokenizer, recordDecoder RecordDecoder) IngestionService {
	return &ingestionService{
		logReader:     logReader,
		lineTokenizer: lineTokenizer,
		recordDecoder: recordDecoder,
	}
}

// NewELBIngestionService wires the reader, tokenizer and decoder for the ELB access log layout.
func NewELBIngestionService() IngestionService {
	decoder, err := NewRecordDecoder(models.ELBSchema, ParseELBTimestamp)
	if err != nil {
		panic(fmt.Sprintf("invalid ELB schema: %v", err))
	}
	return NewIngestionService(NewLogReader(), NewLineTokenizer(models.ELBSchema), decoder)
}

func (s *ingestionService) IngestFile(ctx context.Context, path string) (*IngestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errUnreadableLogData(fmt.Errorf("open %q: %w", path, err))
	}
	defer f.Close()

	return s.Ingest(ctx, f)
}

func (s *ingestionService) Ingest(ctx context.Context, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	result := &IngestResult{Records: make([]*models.LogRecord, 0, 1024)}

	for line, err := range s.logReader.Lines(r) {
		if err != nil {
			return nil, errUnreadableLogData(err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		result.LineCount++
		lineNumber := result.LineCount

		tokenized := s.lineTokenizer.Tokenize(line)
		if !tokenized.OK() {
			svcErr := errMalformedLine(lineNumber, tokenized.Err)
			metricLinesDecodedTotal.WithLabelValues(string(PathNone), svcErr.Code).Inc()
			return nil, svcErr
		}
		if tokenized.Path == PathRequestRecovery {
			result.RecoveredLines++
			logger.Debug().
				Int(loggers.FieldLineNumber, lineNumber).
				Msg("request field recovered from request-line shape")
		}

		record, err := s.recordDecoder.Decode(lineNumber, tokenized.Tokens)
		if err != nil {
			svcErr := s.decodeError(lineNumber, err)
			metricLinesDecodedTotal.WithLabelValues(string(tokenized.Path), svcErr.Code).Inc()
			return nil, svcErr
		}
		metricLinesDecodedTotal.WithLabelValues(string(tokenized.Path), metrics.ValueNoError).Inc()
		result.Records = append(result.Records, record)
	}

	logger.Debug().
		Int(loggers.FieldRecordCount, len(result.Records)).
		Int("recovered_lines", result.RecoveredLines).
		Msg("finished ingesting log stream")

	return result, nil
}

func (s *ingestionService) decodeError(lineNumber int, err error) *svcerrors.ServiceError {
	if errors.Is(err, ErrInvalidTimestamp) {
		return errInvalidTimestamp(lineNumber, err)
	}
	return errMalformedLine(lineNumber, err)
}
