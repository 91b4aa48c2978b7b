package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const resumeFilename = "resume.pdf"

// LocalStorage keeps the resume at a well-known path under a directory.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) path() string {
	return filepath.Join(s.dir, resumeFilename)
}

// Save writes to a temp file first and renames so readers never see a
// partially written PDF.
func (s *LocalStorage) Save(ctx context.Context, r io.Reader) error {
	tmp, err := os.CreateTemp(s.dir, "resume-*.pdf")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write resume: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace resume: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	f, err := os.Open(s.path())
	if os.IsNotExist(err) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("open resume: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat resume: %w", err)
	}
	return f, info.Size(), nil
}

var _ FileStorage = (*LocalStorage)(nil)
