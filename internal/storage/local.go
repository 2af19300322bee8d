package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps media under a public static-asset root on the local
// disk. Uploaded files are served directly by the HTTP file server.
type LocalStorage struct {
	root    string
	baseURL string
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *LocalStorage) Save(path string, file io.Reader) error {
	full := s.fullPath(path)

	err := os.MkdirAll(filepath.Dir(full), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	out, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	_, err = io.Copy(out, file)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(full)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	err = out.Close()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (s *LocalStorage) Delete(path string) error {
	err := os.Remove(s.fullPath(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

func (s *LocalStorage) Exists(path string) bool {
	_, err := os.Stat(s.fullPath(path))
	return err == nil
}

func (s *LocalStorage) URL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}

func (s *LocalStorage) fullPath(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}
