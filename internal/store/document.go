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

// Document is a file holding a single JSON object. Fields are kept as raw
// messages so keys written by a newer schema survive a load/save round trip.
type Document struct {
	path string
}

func NewDocument(path string) *Document {
	return &Document{path: path}
}

// Load returns the stored fields, or nil when the file does not exist yet.
func (d *Document) Load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", d.path, err)
	}

	var fields map[string]json.RawMessage
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, d.path, err)
	}

	return fields, nil
}

// Save writes the full object, replacing prior content.
func (d *Document) Save(fields map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", d.path, err)
	}

	err = os.MkdirAll(filepath.Dir(d.path), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	err = atomic.WriteFile(d.path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}

	return nil
}
