package service

import (
	"context"
	"io"
)

// Service exposes resume file operations. The stored artifact is a
// single PDF; Generate overwrites it from the live portfolio document.
type Service interface {
	// Generate renders the current portfolio document to PDF, stores
	// it as the downloadable resume, and returns its size in bytes.
	Generate(ctx context.Context) (int64, error)

	// Upload replaces the stored resume with the given PDF stream.
	Upload(ctx context.Context, r io.Reader) error

	// Open returns the stored resume for streaming along with its
	// size. Returns storage.ErrNotFound when no resume exists.
	Open(ctx context.Context) (io.ReadCloser, int64, error)

	// Filename derives the download filename from the portfolio
	// owner's name.
	Filename(ctx context.Context) string
}
