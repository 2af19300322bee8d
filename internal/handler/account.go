package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/casefolio/casefolio/internal/ctxkeys"
	"github.com/casefolio/casefolio/internal/repository"
	"github.com/casefolio/casefolio/internal/service"
)

type accountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// linkedAccountView omits the stored access token.
type linkedAccountView struct {
	ExternalLogin string `json:"external_login"`
	DisplayName   string `json:"display_name"`
}

func (h *accountHandler) ListLinkedAccounts(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	user, err := h.accountService.ByEmail(identity.Email)
	if err != nil {
		slog.Error("failed to load user", "error", err, "email", identity.Email)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]linkedAccountView, 0, len(user.DirectAccounts))
	for _, account := range user.DirectAccounts {
		views = append(views, linkedAccountView{
			ExternalLogin: account.ExternalLogin,
			DisplayName:   account.DisplayName,
		})
	}

	respondJSON(w, http.StatusOK, views)
}

func (h *accountHandler) LinkAccount(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())
	externalLogin := r.FormValue("external_login")
	token := r.FormValue("access_token")

	if externalLogin == "" || token == "" {
		respondError(w, http.StatusBadRequest, "external_login and access_token are required")
		return
	}

	account, err := h.accountService.LinkAccount(r.Context(), identity.Email, externalLogin, token)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateLink) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		// Verification failures are shown to the user as-is
		slog.Warn("account link failed", "email", identity.Email, "login", externalLogin, "error", err)
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("account linked", "email", identity.Email, "login", account.ExternalLogin)
	respondJSON(w, http.StatusCreated, linkedAccountView{
		ExternalLogin: account.ExternalLogin,
		DisplayName:   account.DisplayName,
	})
}

func (h *accountHandler) UnlinkAccount(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())
	externalLogin := r.PathValue("login")

	err := h.accountService.UnlinkAccount(identity.Email, externalLogin)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("account unlink failed", "error", err, "email", identity.Email)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("account unlinked", "email", identity.Email, "login", externalLogin)
	respondMessage(w, http.StatusOK, "account unlinked")
}
