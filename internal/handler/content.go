package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
	"github.com/casefolio/casefolio/internal/service"
)

type contentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *contentHandler {
	return &contentHandler{contentService: contentService}
}

func (h *contentHandler) ShowAbout(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentService.Rendered()
	if err != nil {
		slog.Error("failed to load site content", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, content)
}

func (h *contentHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	content := model.SiteContent{
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}

	err := h.contentService.Save(content)
	if err != nil {
		if errors.Is(err, repository.ErrContentRequired) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to save site content", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondMessage(w, http.StatusOK, "content updated")
}
