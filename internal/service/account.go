package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
	"github.com/casefolio/casefolio/internal/validation"
)

var (
	// ErrInvalidCredentials deliberately covers both an unknown email and a
	// wrong password, so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrDuplicateLink = errors.New("this account is already linked")
	ErrLinkNotFound  = errors.New("linked account not found")
)

// Verifier confirms an external credential and resolves its display name.
type Verifier interface {
	Verify(ctx context.Context, token, login string) (string, error)
}

// AccountService handles signup, login and external account linking.
type AccountService struct {
	users    *repository.UserRepository
	verifier Verifier
}

func NewAccountService(users *repository.UserRepository, verifier Verifier) *AccountService {
	return &AccountService{
		users:    users,
		verifier: verifier,
	}
}

func (s *AccountService) Signup(email, password string) (*model.User, error) {
	email = model.NormalizeEmail(email)

	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}
	err = validation.ValidatePassword(password)
	if err != nil {
		return nil, err
	}

	_, err = s.users.ByEmail(email)
	if err == nil {
		return nil, repository.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		PasswordHash:   string(hashed),
		DirectAccounts: []model.LinkedAccount{},
	}

	err = s.users.Create(user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AccountService) Authenticate(email, password string) (*model.User, error) {
	user, err := s.users.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AccountService) ByEmail(email string) (*model.User, error) {
	return s.users.ByEmail(email)
}

// LinkAccount verifies the credential against the external API before any
// state changes. A verification failure leaves the user untouched and its
// message is surfaced verbatim.
func (s *AccountService) LinkAccount(ctx context.Context, email, externalLogin, token string) (*model.LinkedAccount, error) {
	externalLogin = strings.TrimSpace(externalLogin)

	user, err := s.users.ByEmail(email)
	if err != nil {
		return nil, err
	}

	if user.HasLinkedAccount(externalLogin) {
		return nil, ErrDuplicateLink
	}

	displayName, err := s.verifier.Verify(ctx, token, externalLogin)
	if err != nil {
		return nil, fmt.Errorf("account verification failed: %w", err)
	}

	account := model.LinkedAccount{
		ExternalLogin: externalLogin,
		DisplayName:   displayName,
		AccessToken:   token,
	}
	user.DirectAccounts = append(user.DirectAccounts, account)

	err = s.users.Update(user)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// UnlinkAccount removes a linked account. State is only persisted when a
// removal actually happened; an unknown login is reported, not ignored.
func (s *AccountService) UnlinkAccount(email, externalLogin string) error {
	user, err := s.users.ByEmail(email)
	if err != nil {
		return err
	}

	kept := user.DirectAccounts[:0]
	for _, account := range user.DirectAccounts {
		if account.ExternalLogin != externalLogin {
			kept = append(kept, account)
		}
	}

	if len(kept) == len(user.DirectAccounts) {
		return ErrLinkNotFound
	}

	user.DirectAccounts = kept
	return s.users.Update(user)
}
