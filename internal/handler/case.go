package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/casefolio/casefolio/internal/model"
	"github.com/casefolio/casefolio/internal/repository"
	"github.com/casefolio/casefolio/internal/service"
)

type caseHandler struct {
	caseService *service.CaseService
}

func NewCaseHandler(caseService *service.CaseService) *caseHandler {
	return &caseHandler{caseService: caseService}
}

type caseView struct {
	model.Case
	CoverURL string `json:"cover_url,omitempty"`
}

func (h *caseHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.caseService.List()
	if err != nil {
		slog.Error("failed to list cases", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]caseView, 0, len(cases))
	for _, c := range cases {
		views = append(views, caseView{Case: c, CoverURL: h.caseService.CoverURL(&c)})
	}

	respondJSON(w, http.StatusOK, views)
}

func (h *caseHandler) ShowCase(w http.ResponseWriter, r *http.Request) {
	found, err := h.caseService.BySlug(r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			respondError(w, http.StatusNotFound, "case not found")
			return
		}
		slog.Error("failed to load case", "error", err, "slug", r.PathValue("slug"))
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, caseView{Case: *found, CoverURL: h.caseService.CoverURL(found)})
}

func (h *caseHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	input, cover, err := parseCaseForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	created, err := h.caseService.Create(input, cover)
	if err != nil {
		h.respondCaseError(w, err)
		return
	}

	slog.Info("case created", "slug", created.Slug)
	respondJSON(w, http.StatusCreated, created)
}

func (h *caseHandler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	input, cover, err := parseCaseForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	updated, err := h.caseService.Update(r.PathValue("slug"), input, cover)
	if err != nil {
		h.respondCaseError(w, err)
		return
	}

	slog.Info("case updated", "slug", updated.Slug)
	respondJSON(w, http.StatusOK, updated)
}

// UploadEditorImage stores an inline image for the rich-text editor and
// returns its public location.
func (h *caseHandler) UploadEditorImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	path, ok, err := h.caseService.StoreEditorImage(service.Upload{Filename: header.Filename, File: file})
	if err != nil {
		slog.Error("failed to store editor image", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		respondError(w, http.StatusBadRequest, "unsupported file type")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"location": path})
}

func (h *caseHandler) respondCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrTitleRequired):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrCaseNotFound):
		respondError(w, http.StatusNotFound, "case not found")
	default:
		slog.Error("case operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseCaseForm(r *http.Request) (repository.CaseInput, *service.Upload, error) {
	err := r.ParseMultipartForm(32 << 20)
	if err != nil {
		// Plain form posts (no file) are still accepted
		err = r.ParseForm()
		if err != nil {
			return repository.CaseInput{}, nil, err
		}
	}

	input := repository.CaseInput{
		Title:         r.FormValue("title"),
		Subtitle:      r.FormValue("subtitle"),
		Duration:      r.FormValue("duration"),
		Teaser:        r.FormValue("teaser"),
		CustomContent: r.FormValue("custom_content"),
		Metric1:       metricFromForm(r, "metric_1"),
		Metric2:       metricFromForm(r, "metric_2"),
		Task:          r.FormValue("task"),
		Hypothesis:    r.FormValue("hypothesis"),
		Actions:       r.FormValue("actions"),
		Result:        r.FormValue("result"),
		Conclusion:    r.FormValue("conclusion"),
		Tags:          repository.ParseTags(r.FormValue("tags")),
		ProjectStages: repository.ParseStages(formValues(r, "project_stages")),
		Niche:         r.FormValue("niche"),
		Sources:       repository.ParseStages(formValues(r, "sources")),
		Icon:          r.FormValue("icon"),
	}

	file, header, err := r.FormFile("cover_image")
	if err != nil {
		return input, nil, nil
	}

	return input, &service.Upload{Filename: header.Filename, File: file}, nil
}

func metricFromForm(r *http.Request, prefix string) model.Metric {
	return model.Metric{
		Label:   r.FormValue(prefix + "_label"),
		Before:  r.FormValue(prefix + "_before"),
		After:   r.FormValue(prefix + "_after"),
		Dynamic: r.FormValue(prefix + "_dynamic"),
		Trend:   r.FormValue(prefix + "_trend"),
		Color:   r.FormValue(prefix + "_color"),
	}
}

func formValues(r *http.Request, key string) []string {
	if r.MultipartForm != nil {
		if values, ok := r.MultipartForm.Value[key]; ok {
			return values
		}
	}
	return r.Form[key]
}
