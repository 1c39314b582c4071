package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/service"
	apierrors "github.com/pribylovaa/go-recipe-catalog/internal/transport/http/errors"
	"github.com/pribylovaa/go-recipe-catalog/internal/transport/http/middleware"
)

// Эндпойнты закладок требуют middleware.Authenticate: пользователь берётся из контекста.

func (h *Handlers) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	c, err := models.ParseFilterCriterion(r.URL.Query().Get("filter"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	items, err := h.svc.Bookmarks(r.Context(), middleware.UserIDFrom(r.Context()), c)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BookmarkListView{Items: recipesFromModels(items)})
}

func (h *Handlers) AddBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "recipe_id"))
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.AddBookmark(r.Context(), middleware.UserIDFrom(r.Context()), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "recipe_id"))
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.RemoveBookmark(r.Context(), middleware.UserIDFrom(r.Context()), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
