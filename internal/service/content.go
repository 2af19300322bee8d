package service

import (
	"log/slog"

	"github.com/casefolio/casefolio/internal/markdown"
	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
)

// RenderedContent is the about block with its body converted to HTML.
type RenderedContent struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
}

// ContentService serves the singleton about block.
type ContentService struct {
	content  *repository.ContentRepository
	renderer *markdown.Renderer
}

func NewContentService(content *repository.ContentRepository) *ContentService {
	return &ContentService{
		content:  content,
		renderer: markdown.NewRenderer(),
	}
}

func (s *ContentService) Load() (*model.SiteContent, error) {
	return s.content.Load()
}

// Rendered loads the about block and renders its body as markdown. A render
// failure falls back to the raw body rather than hiding the content.
func (s *ContentService) Rendered() (*RenderedContent, error) {
	content, err := s.content.Load()
	if err != nil {
		return nil, err
	}

	bodyHTML, err := s.renderer.Render(content.Body)
	if err != nil {
		slog.Warn("failed to render about body", "error", err)
		bodyHTML = content.Body
	}

	return &RenderedContent{
		Title:    content.Title,
		Body:     content.Body,
		BodyHTML: bodyHTML,
	}, nil
}

func (s *ContentService) Save(content model.SiteContent) error {
	err := s.content.Save(content)
	if err != nil {
		return err
	}

	slog.Info("site content updated")
	return nil
}
