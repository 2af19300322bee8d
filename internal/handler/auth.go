package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
	"github.com/casefolio/casefolio/internal/service"
	"github.com/casefolio/casefolio/internal/validation"
)

type authHandler struct {
	authService    *service.AuthService
	accountService *service.AccountService
}

func NewAuthHandler(authService *service.AuthService, accountService *service.AccountService) *authHandler {
	return &authHandler{
		authService:    authService,
		accountService: accountService,
	}
}

func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.accountService.Signup(email, password)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidEmail),
			errors.Is(err, validation.ErrWeakPassword),
			errors.Is(err, validation.ErrPasswordTooLong):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrDuplicateEmail):
			respondError(w, http.StatusConflict, err.Error())
		default:
			slog.Error("signup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.issueSession(w, model.Identity{Email: user.Email})

	slog.Info("user signed up", "email", user.Email)
	respondMessage(w, http.StatusCreated, "account created")
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.accountService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.issueSession(w, model.Identity{Email: user.Email})

	slog.Info("user logged in", "email", user.Email)
	respondMessage(w, http.StatusOK, "logged in")
}

// AdminLogin checks the shared admin credential from config.
func (h *authHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	err := h.authService.AuthenticateAdmin(r.FormValue("password"))
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	h.issueSession(w, model.Identity{Admin: true})

	slog.Info("admin logged in")
	respondMessage(w, http.StatusOK, "logged in")
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	respondMessage(w, http.StatusOK, "logged out")
}

func (h *authHandler) issueSession(w http.ResponseWriter, identity model.Identity) {
	token, err := h.authService.GenerateJWT(identity)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err)
		return
	}
	h.authService.SetJWTCookie(w, token)
}
