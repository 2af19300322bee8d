package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/store"
)

var ErrContentRequired = errors.New("title and body are both required")

// ContentRepository holds the singleton "about" record. Loading always
// resolves: defaults fill in for a missing file or a missing field, one
// field at a time. Saving goes through the raw field map so keys written
// by a newer schema survive the round trip.
type ContentRepository struct {
	document *store.Document
}

func NewContentRepository(path string) *ContentRepository {
	return &ContentRepository{document: store.NewDocument(path)}
}

func (r *ContentRepository) Load() (*model.SiteContent, error) {
	fields, err := r.document.Load()
	if err != nil {
		return nil, err
	}

	content := model.DefaultSiteContent()
	if value := stringField(fields, "title"); value != "" {
		content.Title = value
	}
	if value := stringField(fields, "body"); value != "" {
		content.Body = value
	}

	return &content, nil
}

func (r *ContentRepository) Save(content model.SiteContent) error {
	if strings.TrimSpace(content.Title) == "" || strings.TrimSpace(content.Body) == "" {
		return ErrContentRequired
	}

	fields, err := r.document.Load()
	if err != nil {
		return err
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}

	fields["title"], err = json.Marshal(content.Title)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}
	fields["body"], err = json.Marshal(content.Body)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}

	return r.document.Save(fields)
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}

	var value string
	err := json.Unmarshal(raw, &value)
	if err != nil {
		return ""
	}
	return value
}
