package stores

import (
	"context"
	"errors"
	"fmt"
	"io"

	"session-analytics/internal/shared/filestorages"
)

var (
	ErrLogUploadAlreadyExist = errors.New("log upload already exists")
	ErrLogUploadNotFound     = errors.New("log upload not found")
)

// LogUpload identifies a staged upload.
type LogUpload struct {
	Key     string
	FileKey string
	Size    int64
}

// LogUploadStore stages uploaded access logs before analysis, keyed by idempotency key. Put never
// overwrites: it is an atomic "create-if-not-exists", similar to S3's conditional PUT.
//
// Example scenario:
//   - Request A and Request B both upload with Idempotency-Key "k-1" simultaneously
//   - Request A's Put succeeds → upload staged and analyzed
//   - Request B's Put fails → ErrLogUploadAlreadyExist returned (duplicate detected)
//
//go:generate mockgen -source=log_upload_store.go -destination=./mocks/log_upload_store_mock.go -package=mocks
type LogUploadStore interface {
	Put(ctx context.Context, key string, r io.Reader) (*LogUpload, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type logUploadStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLogUploadStore(fileStorage filestorages.FileStorage) LogUploadStore {
	return &logUploadStore{fileStorage: fileStorage, dir: "uploads"}
}

func (s *logUploadStore) Put(ctx context.Context, key string, r io.Reader) (*LogUpload, error) {
	fileKey := s.fileKey(key)

	result, err := s.fileStorage.Put(ctx, fileKey, r, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return nil, ErrLogUploadAlreadyExist
		}
		return nil, fmt.Errorf("failed to put log upload: %w", err)
	}
	return &LogUpload{Key: key, FileKey: result.FileKey, Size: result.Size}, nil
}

func (s *logUploadStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.fileStorage.Get(ctx, s.fileKey(key))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrLogUploadNotFound
		}
		return nil, fmt.Errorf("failed to get log upload: %w", err)
	}
	return rc, nil
}

func (s *logUploadStore) Delete(ctx context.Context, key string) error {
	err := s.fileStorage.Delete(ctx, s.fileKey(key))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return ErrLogUploadNotFound
		}
		return fmt.Errorf("failed to delete log upload: %w", err)
	}
	return nil
}

func (s *logUploadStore) fileKey(key string) string {
	return fmt.Sprintf("%s/%s.log", s.dir, key)
}
