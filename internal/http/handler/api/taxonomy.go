package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

type TaxonomyHeader struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateTaxonomyRequest struct {
	Name string `json:"name"`
}

type CreateTaxonomyResponse struct {
	Item TaxonomyHeader `json:"item"`
}

type ListTaxonomyResponse struct {
	Items []TaxonomyHeader `json:"items"`
}

func (h *Handler) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaxonomyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "could not parse request body")
		return
	}

	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	tag, err := h.library.FindOrCreateTag(ctx, req.Name)
	if err != nil {
		slog.ErrorContext(ctx, "could not create tag", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, CreateTaxonomyResponse{
		Item: TaxonomyHeader{ID: string(tag.ID()), Name: tag.Name()},
	})
}

func (h *Handler) handleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tags, err := h.library.ListTags(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list tags", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListTaxonomyResponse{
		Items: make([]TaxonomyHeader, 0, len(tags)),
	}

	for _, tag := range tags {
		res.Items = append(res.Items, TaxonomyHeader{ID: string(tag.ID()), Name: tag.Name()})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaxonomyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "could not parse request body")
		return
	}

	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	category, err := h.library.FindOrCreateCategory(ctx, req.Name)
	if err != nil {
		slog.ErrorContext(ctx, "could not create category", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, CreateTaxonomyResponse{
		Item: TaxonomyHeader{ID: string(category.ID()), Name: category.Name()},
	})
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.library.ListCategories(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list categories", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListTaxonomyResponse{
		Items: make([]TaxonomyHeader, 0, len(categories)),
	}

	for _, category := range categories {
		res.Items = append(res.Items, TaxonomyHeader{ID: string(category.ID()), Name: category.Name()})
	}

	writeJSON(w, r, http.StatusOK, res)
}
