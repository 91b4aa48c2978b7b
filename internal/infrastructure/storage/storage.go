package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no resume file has been stored yet.
var ErrNotFound = errors.New("file not found")

// FileStorage holds the single current resume PDF, overwritten wholesale
// on upload. Backends: local disk and MinIO.
type FileStorage interface {
	// Save replaces the stored resume with the given content.
	Save(ctx context.Context, r io.Reader) error

	// Open returns a reader over the stored resume and its size.
	// Returns ErrNotFound when nothing has been stored.
	Open(ctx context.Context) (io.ReadCloser, int64, error)
}
