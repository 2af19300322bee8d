package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// ErrCorrupt means the backing file exists but does not parse as the
// expected structure. No repair is attempted.
var ErrCorrupt = errors.New("store file is corrupt")

// Collection is a file-backed JSON array of records. Every operation reads
// the current on-disk state; there is no in-process cache. Save replaces
// the whole file atomically (write to temp, then rename), so readers never
// observe a partial write. Two concurrent writers still race: the later
// save wins. That is an accepted limitation for a single-operator tool.
type Collection[T any] struct {
	path string
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load returns all records, or an empty slice when the file does not exist
// yet (first-run bootstrap, not an error).
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}

	var records []T
	err = json.Unmarshal(data, &records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, c.path, err)
	}

	return records, nil
}

// Save writes the full collection, replacing prior content.
func (c *Collection[T]) Save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.path, err)
	}

	err = os.MkdirAll(filepath.Dir(c.path), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	err = atomic.WriteFile(c.path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}

	return nil
}

// Find returns the first record matching pred from a fresh load. A miss is
// reported via the bool, not an error.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool, error) {
	var zero T

	records, err := c.Load()
	if err != nil {
		return zero, false, err
	}

	for _, record := range records {
		if pred(record) {
			return record, true, nil
		}
	}

	return zero, false, nil
}
