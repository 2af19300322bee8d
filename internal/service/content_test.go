package service_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
	"github.com/casefolio/casefolio/internal/service"
)

func TestContentRenderedConvertsMarkdown(t *testing.T) {
	content := service.NewContentService(
		repository.NewContentRepository(filepath.Join(t.TempDir(), "content.json")))

	err := content.Save(model.SiteContent{
		Title: "Обо мне",
		Body:  "Привет, я **маркетолог**.",
	})
	require.NoError(t, err)

	rendered, err := content.Rendered()
	require.NoError(t, err)

	assert.Equal(t, "Обо мне", rendered.Title)
	assert.Contains(t, rendered.BodyHTML, "<strong>маркетолог</strong>")
	assert.Equal(t, "Привет, я **маркетолог**.", rendered.Body)
}
