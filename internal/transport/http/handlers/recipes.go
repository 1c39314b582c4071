package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/service"
	apierrors "github.com/pribylovaa/go-recipe-catalog/internal/transport/http/errors"
)

func (h *Handlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	c, err := models.ParseFilterCriterion(q.Get("filter"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	opts := models.ListOptions{
		Criterion: c,
		Category:  q.Get("category"),
		PageToken: q.Get("page_token"),
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}

		opts.Limit = int32(n)
	}

	page, err := h.svc.ListRecipes(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RecipeListView{
		Items:         recipesFromModels(page.Items),
		NextPageToken: page.NextPageToken,
	})
}

func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	recipe, err := h.svc.RecipeByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RecipeFromModel(*recipe))
}

func (h *Handlers) ListFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FiltersFromModels(h.svc.Filters()))
}

// parseID разбирает положительный идентификатор рецепта из пути.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
