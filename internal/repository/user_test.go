package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
)

func newUserRepo(t *testing.T) *repository.UserRepository {
	t.Helper()
	return repository.NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
}

func TestUserCreateAndLookup(t *testing.T) {
	repo := newUserRepo(t)

	user := &model.User{Email: "anna@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))

	found, err := repo.ByEmail("  Anna@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", found.Email)
	assert.Equal(t, []model.LinkedAccount{}, found.DirectAccounts)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := newUserRepo(t)

	require.NoError(t, repo.Create(&model.User{Email: "anna@example.com"}))
	err := repo.Create(&model.User{Email: "anna@example.com"})

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserUpdate(t *testing.T) {
	repo := newUserRepo(t)

	user := &model.User{Email: "anna@example.com", DirectAccounts: []model.LinkedAccount{}}
	require.NoError(t, repo.Create(user))

	user.DirectAccounts = append(user.DirectAccounts, model.LinkedAccount{ExternalLogin: "agency-client"})
	require.NoError(t, repo.Update(user))

	found, err := repo.ByEmail(user.Email)
	require.NoError(t, err)
	require.Len(t, found.DirectAccounts, 1)
	assert.Equal(t, "agency-client", found.DirectAccounts[0].ExternalLogin)
}

func TestUserUpdateNotFound(t *testing.T) {
	repo := newUserRepo(t)

	err := repo.Update(&model.User{Email: "ghost@example.com"})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
