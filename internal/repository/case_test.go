package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
)

func newCaseRepo(t *testing.T) *repository.CaseRepository {
	t.Helper()
	return repository.NewCaseRepository(filepath.Join(t.TempDir(), "cases.json"))
}

func TestCreateAssignsSlugAndDefaults(t *testing.T) {
	repo := newCaseRepo(t)

	created, err := repo.Create(repository.CaseInput{Title: "Рост продаж в нише мебели"})
	require.NoError(t, err)

	assert.Equal(t, "рост-продаж-в-нише-мебели", created.Slug)
	assert.Equal(t, model.TrendUp, created.Metric1.Trend)
	assert.Equal(t, model.DefaultColor, created.Metric1.Color)
	assert.Equal(t, model.DefaultIcon, created.Icon)
	assert.Equal(t, []string{}, created.Tags)
	assert.Equal(t, []string{}, created.ProjectStages)
}

func TestCreateRequiresTitle(t *testing.T) {
	repo := newCaseRepo(t)

	_, err := repo.Create(repository.CaseInput{Title: "   "})

	assert.ErrorIs(t, err, repository.ErrTitleRequired)
}

func TestCreateSuffixesCollidingSlugs(t *testing.T) {
	repo := newCaseRepo(t)

	first, err := repo.Create(repository.CaseInput{Title: "Рост продаж"})
	require.NoError(t, err)
	second, err := repo.Create(repository.CaseInput{Title: "Рост продаж!"})
	require.NoError(t, err)
	third, err := repo.Create(repository.CaseInput{Title: "Рост — продаж"})
	require.NoError(t, err)

	assert.Equal(t, "рост-продаж", first.Slug)
	assert.Equal(t, "рост-продаж-2", second.Slug)
	assert.Equal(t, "рост-продаж-3", third.Slug)
}

func TestUpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	repo := newCaseRepo(t)

	created, err := repo.Create(repository.CaseInput{Title: "Лидогенерация"})
	require.NoError(t, err)

	updated, err := repo.Update(created.Slug, repository.CaseInput{
		Title:  "Лидогенерация",
		Teaser: "новый тизер",
	})
	require.NoError(t, err)

	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, "новый тизер", updated.Teaser)
}

func TestUpdateReassignsSlugOnCollision(t *testing.T) {
	repo := newCaseRepo(t)

	_, err := repo.Create(repository.CaseInput{Title: "Первый кейс"})
	require.NoError(t, err)
	second, err := repo.Create(repository.CaseInput{Title: "Второй кейс"})
	require.NoError(t, err)

	updated, err := repo.Update(second.Slug, repository.CaseInput{Title: "Первый кейс"})
	require.NoError(t, err)

	assert.Equal(t, "первый-кейс-2", updated.Slug)
}

func TestUpdateNotFound(t *testing.T) {
	repo := newCaseRepo(t)

	_, err := repo.Update("nope", repository.CaseInput{Title: "x"})

	assert.ErrorIs(t, err, repository.ErrCaseNotFound)
}

func TestUpdateKeepsCoverImageWhenNoneSubmitted(t *testing.T) {
	repo := newCaseRepo(t)

	created, err := repo.Create(repository.CaseInput{
		Title:      "Кейс с обложкой",
		CoverImage: "uploads/covers/a.png",
	})
	require.NoError(t, err)

	updated, err := repo.Update(created.Slug, repository.CaseInput{Title: "Кейс с обложкой"})
	require.NoError(t, err)
	assert.Equal(t, "uploads/covers/a.png", updated.CoverImage)

	updated, err = repo.Update(created.Slug, repository.CaseInput{
		Title:      "Кейс с обложкой",
		CoverImage: "uploads/covers/b.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/covers/b.png", updated.CoverImage)
}

func TestBySlug(t *testing.T) {
	repo := newCaseRepo(t)

	created, err := repo.Create(repository.CaseInput{Title: "Ретаргетинг"})
	require.NoError(t, err)

	found, err := repo.BySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.Title, found.Title)

	_, err = repo.BySlug("missing")
	assert.ErrorIs(t, err, repository.ErrCaseNotFound)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t,
		[]string{"таргет", "вк", "вк"},
		repository.ParseTags(" таргет , , вк, вк "))
	assert.Equal(t, []string{}, repository.ParseTags(""))
}

func TestParseStages(t *testing.T) {
	assert.Equal(t,
		[]string{"анализ", "запуск"},
		repository.ParseStages([]string{" анализ ", "", "запуск"}))
}
