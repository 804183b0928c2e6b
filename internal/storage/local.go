package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const proofsDir = "proofs"

var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

var imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// Local keeps uploaded files in a directory on disk. Stored paths are
// relative to that directory.
type Local struct {
	dir     string
	maxSize int64
}

func NewLocal(dir string, maxSize int64) (*Local, error) {
	if err := os.MkdirAll(filepath.Join(dir, proofsDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &Local{dir: dir, maxSize: maxSize}, nil
}

// SaveProof stores a payment proof image and returns its path,
// proofs/<uuid><ext>.
func (s *Local) SaveProof(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), imageTypes...) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mtype.String())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := path.Join(proofsDir, uuid.NewString()+mtype.Extension())
	if err := os.WriteFile(filepath.Join(s.dir, filepath.FromSlash(name)), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return name, nil
}
