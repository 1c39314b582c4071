package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
)

// RecipeService — методы сервисного слоя, которые нужны REST-хендлерам.
type RecipeService interface {
	ListRecipes(ctx context.Context, opts models.ListOptions) (*models.Page, error)
	RecipeByID(ctx context.Context, id int64) (*models.Recipe, error)
	Filters() []models.FilterCriterion
	AddBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error
	RemoveBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error
	Bookmarks(ctx context.Context, userID uuid.UUID, c models.FilterCriterion) ([]models.Recipe, error)
}

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	svc RecipeService
}

func New(svc RecipeService) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
