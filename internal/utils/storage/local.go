package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

const PublicUploadsPrefix = "/uploads"

// LocalStorage writes images into a directory that is served statically
// under PublicUploadsPrefix.
type LocalStorage struct {
	Dir string
}

// NewLocalStorage creates dir when it does not exist yet.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &LocalStorage{Dir: dir}, nil
}

func (s *LocalStorage) Save(ctx context.Context, fileName, _ string, body io.ReadSeeker) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}

	tmp, err := os.CreateTemp(s.Dir, ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.Dir, fileName)); err != nil {
		return "", err
	}
	return path.Join(PublicUploadsPrefix, fileName), nil
}
