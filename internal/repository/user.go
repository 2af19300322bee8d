package repository

import (
	"errors"
	"fmt"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/store"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository owns the user collection and its email uniqueness. Emails
// are expected to be normalized by the caller before lookups.
type UserRepository struct {
	collection *store.Collection[model.User]
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{collection: store.NewCollection[model.User](path)}
}

func (r *UserRepository) ByEmail(email string) (*model.User, error) {
	email = model.NormalizeEmail(email)

	found, ok, err := r.collection.Find(func(u model.User) bool {
		return u.Email == email
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	found.ApplyDefaults()
	return &found, nil
}

func (r *UserRepository) Create(user *model.User) error {
	users, err := r.collection.Load()
	if err != nil {
		return err
	}

	for _, existing := range users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	users = append(users, *user)
	err = r.collection.Save(users)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// Update replaces the stored record matching the user's email.
func (r *UserRepository) Update(user *model.User) error {
	users, err := r.collection.Load()
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Email == user.Email {
			users[i] = *user
			err = r.collection.Save(users)
			if err != nil {
				return fmt.Errorf("failed to save user: %w", err)
			}
			return nil
		}
	}

	return ErrUserNotFound
}
