package service

import (
	"fmt"
	"io"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
)

// Upload is a pending file submission taken from a multipart form.
type Upload struct {
	Filename string
	File     io.Reader
}

// CaseService composes the case repository with media intake. Media is
// always stored before the record referencing it is written, so a failed
// upload never leaves a dangling path.
type CaseService struct {
	cases *repository.CaseRepository
	media *MediaService
}

func NewCaseService(cases *repository.CaseRepository, media *MediaService) *CaseService {
	return &CaseService{
		cases: cases,
		media: media,
	}
}

func (s *CaseService) List() ([]model.Case, error) {
	return s.cases.All()
}

func (s *CaseService) BySlug(slug string) (*model.Case, error) {
	return s.cases.BySlug(slug)
}

func (s *CaseService) Create(in repository.CaseInput, cover *Upload) (*model.Case, error) {
	if cover != nil {
		path, ok, err := s.media.Store(cover.Filename, cover.File, PurposeCover)
		if err != nil {
			return nil, fmt.Errorf("failed to store cover image: %w", err)
		}
		if ok {
			in.CoverImage = path
		}
	}

	return s.cases.Create(in)
}

func (s *CaseService) Update(slug string, in repository.CaseInput, cover *Upload) (*model.Case, error) {
	existing, err := s.cases.BySlug(slug)
	if err != nil {
		return nil, err
	}

	if cover != nil {
		path, ok, err := s.media.ReplaceCover(existing.CoverImage, cover.Filename, cover.File)
		if err != nil {
			return nil, fmt.Errorf("failed to store cover image: %w", err)
		}
		if ok {
			in.CoverImage = path
		}
	}

	return s.cases.Update(slug, in)
}

// StoreEditorImage persists an inline rich-text editor upload.
func (s *CaseService) StoreEditorImage(upload Upload) (string, bool, error) {
	return s.media.Store(upload.Filename, upload.File, PurposeEditor)
}

// CoverURL resolves a case's stored cover path to a public URL.
func (s *CaseService) CoverURL(c *model.Case) string {
	return s.media.URL(c.CoverImage)
}
