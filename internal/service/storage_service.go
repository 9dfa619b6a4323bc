package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pdf-ask-server/internal/domain"

	"github.com/google/uuid"
)

// LocalUploadStorage stages each upload under its own generated name so
// concurrent uploads never share a path.
type LocalUploadStorage struct {
	dir     string
	maxSize int64
	logger  domain.Logger
}

// NewUploadStorage creates a staging area rooted at dir.
// maxSize <= 0 disables the size limit.
func NewUploadStorage(dir string, maxSize int64, logger domain.Logger) *LocalUploadStorage {
	return &LocalUploadStorage{
		dir:     dir,
		maxSize: maxSize,
		logger:  logger,
	}
}

// SaveUpload copies file into a fresh staging file
func (s *LocalUploadStorage) SaveUpload(ctx context.Context, file io.Reader) (*domain.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	id := uuid.NewString()
	info := &domain.FileInfo{
		ID:       id,
		Filename: id + ".pdf",
	}
	info.Path = filepath.Join(s.dir, info.Filename)

	out, err := os.OpenFile(info.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	src := file
	if s.maxSize > 0 {
		src = io.LimitReader(file, s.maxSize+1)
	}
	n, copyErr := io.Copy(out, src)
	closeErr := out.Close()

	switch {
	case copyErr != nil:
		s.remove(info.Path)
		return nil, fmt.Errorf("write upload file: %w", copyErr)
	case closeErr != nil:
		s.remove(info.Path)
		return nil, fmt.Errorf("close upload file: %w", closeErr)
	case s.maxSize > 0 && n > s.maxSize:
		s.remove(info.Path)
		return nil, fmt.Errorf("upload exceeds %d bytes: %w", s.maxSize, domain.ErrFileTooLarge)
	}

	info.Size = n
	s.logger.Debug("Upload staged", "file_id", id, "size", n)
	return info, nil
}

// CleanupTemporary removes a staged upload. Missing files are not an error.
func (s *LocalUploadStorage) CleanupTemporary(fileID string) error {
	if _, err := uuid.Parse(fileID); err != nil {
		return fmt.Errorf("invalid file id %q: %w", fileID, err)
	}
	err := os.Remove(filepath.Join(s.dir, fileID+".pdf"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalUploadStorage) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Failed to remove staged upload", "path", path, "error", err)
	}
}
