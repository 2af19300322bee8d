package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
)

func TestContentLoadDefaultsWhenMissing(t *testing.T) {
	repo := repository.NewContentRepository(filepath.Join(t.TempDir(), "content.json"))

	content, err := repo.Load()
	require.NoError(t, err)

	defaults := model.DefaultSiteContent()
	assert.Equal(t, defaults.Title, content.Title)
	assert.Equal(t, defaults.Body, content.Body)
}

func TestContentLoadMergesFieldByField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"Кто я"}`), 0o644))

	repo := repository.NewContentRepository(path)
	content, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, "Кто я", content.Title)
	assert.Equal(t, model.DefaultSiteContent().Body, content.Body)
}

func TestContentSaveRequiresBothFields(t *testing.T) {
	repo := repository.NewContentRepository(filepath.Join(t.TempDir(), "content.json"))

	err := repo.Save(model.SiteContent{Title: "x", Body: "  "})

	assert.ErrorIs(t, err, repository.ErrContentRequired)
}

func TestContentSaveRoundTrip(t *testing.T) {
	repo := repository.NewContentRepository(filepath.Join(t.TempDir(), "content.json"))

	saved := model.SiteContent{Title: "Обо мне", Body: "Маркетолог."}
	require.NoError(t, repo.Save(saved))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, *loaded)
}

func TestContentSavePreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"a","body":"b","theme":"dark"}`), 0o644))

	repo := repository.NewContentRepository(path)
	require.NoError(t, repo.Save(model.SiteContent{Title: "new", Body: "text"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"theme"`)
	assert.Contains(t, string(data), `"new"`)
}
