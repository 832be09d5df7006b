// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mep-tools/bracket-tool/internal/logger"
)

// localPDFStore keeps reports as files in a single directory, normally a
// mounted volume. Recorded paths are absolute file paths.
type localPDFStore struct {
	dir    string
	logger *logger.Logger
}

// NewLocalPDFStore creates dir when missing and returns a [PDFStore] that
// writes into it.
func NewLocalPDFStore(dir string, log *logger.Logger) (PDFStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving pdf directory: %w", err)
	}

	if err = os.MkdirAll(abs, 0o755); err != nil {
		log.Err(err).Str("func", "NewLocalPDFStore").Str("dir", abs).Msg("error creating pdf directory")
		return nil, fmt.Errorf("error creating pdf directory: %w", err)
	}

	log.Debug().Str("dir", abs).Msg("creating local pdf store")
	return &localPDFStore{dir: abs, logger: log}, nil
}

func (s *localPDFStore) Path(fileName string) (string, error) {
	if fileName == "" || filepath.Base(fileName) != fileName || fileName == "." || fileName == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPDFPath, fileName)
	}
	return filepath.Join(s.dir, fileName), nil
}

// Save writes content under fileName. The file appears atomically: it is
// written to a temporary file first and renamed into place.
func (s *localPDFStore) Save(ctx context.Context, fileName string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.Path(fileName)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, ".pdf-*")
	if err != nil {
		return "", fmt.Errorf("error creating temporary pdf: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("error writing pdf: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("error syncing pdf: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("error closing pdf: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("error moving pdf into place: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("pdf stored")
	return path, nil
}

// Open returns the file at path. Paths outside the store directory are
// rejected with [ErrInvalidPDFPath].
func (s *localPDFStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(s.dir, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPDFPath, path)
	}

	f, err := os.Open(filepath.Join(s.dir, rel))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrPDFNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening pdf: %w", err)
	}

	return f, nil
}
