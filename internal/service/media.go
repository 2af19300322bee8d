package service

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/casefolio/casefolio/internal/storage"
	"github.com/casefolio/casefolio/internal/validation"
)

// Purpose scopes stored media to its destination directory.
type Purpose string

const (
	PurposeCover  Purpose = "covers"
	PurposeEditor Purpose = "editor"
)

const sniffLen = 3072

// MediaService validates uploads and persists them under collision-free
// names. The caller-supplied filename is never trusted beyond its extension.
type MediaService struct {
	storage storage.Storage
}

func NewMediaService(storage storage.Storage) *MediaService {
	return &MediaService{storage: storage}
}

// Store persists an uploaded image and returns its reference path relative
// to the static root. A bad filename or non-image content is reported as
// not stored (ok=false), not as an error; errors are reserved for I/O
// failures after the upload was accepted.
func (s *MediaService) Store(filename string, file io.Reader, purpose Purpose) (string, bool, error) {
	if !validation.AllowedImageName(filename) {
		return "", false, nil
	}

	buffered := bufio.NewReaderSize(file, sniffLen)
	head, err := buffered.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", false, fmt.Errorf("failed to read upload: %w", err)
	}
	if !validation.LooksLikeImage(head) {
		return "", false, nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	relPath := path.Join("uploads", string(purpose), name)

	err = s.storage.Save(relPath, buffered)
	if err != nil {
		return "", false, fmt.Errorf("failed to store upload: %w", err)
	}

	return relPath, true, nil
}

// ReplaceCover stores the new cover first and removes the old file after,
// so a failed store never leaves a record pointing at nothing. Deleting
// the old file is best effort.
func (s *MediaService) ReplaceCover(oldPath, filename string, file io.Reader) (string, bool, error) {
	newPath, ok, err := s.Store(filename, file, PurposeCover)
	if err != nil || !ok {
		return "", ok, err
	}

	if oldPath != "" && s.storage.Exists(oldPath) {
		err = s.storage.Delete(oldPath)
		if err != nil {
			slog.Warn("failed to delete replaced cover image", "path", oldPath, "error", err)
		}
	}

	return newPath, true, nil
}

// URL resolves a stored reference path to its public URL.
func (s *MediaService) URL(path string) string {
	if path == "" {
		return ""
	}
	return s.storage.URL(path)
}
