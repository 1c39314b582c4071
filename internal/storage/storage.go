// storage определяет контракты доступа к хранилищу recipe-service.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
)

// ErrNotFound — сущность отсутствует в хранилище.
var ErrNotFound = errors.New("not found")

// RecipeStorage описывает операции над сущностью models.Recipe.
type RecipeStorage interface {
	// SaveRecipes сохраняет пачку рецептов (upsert по ID).
	// Порядок первой вставки фиксируется и задаёт «исходный» порядок каталога.
	SaveRecipes(ctx context.Context, items []models.Recipe) error
	// ListRecipes возвращает все рецепты в исходном порядке.
	// category == "" — без фильтра по категории.
	ListRecipes(ctx context.Context, category string) ([]models.Recipe, error)
	// RecipeByID возвращает рецепт по идентификатору.
	// Если запись не найдена — ErrNotFound.
	RecipeByID(ctx context.Context, id int64) (*models.Recipe, error)
}

// BookmarkStorage описывает операции над закладками пользователей.
type BookmarkStorage interface {
	// AddBookmark добавляет закладку (идемпотентно).
	// Если рецепта нет — ErrNotFound.
	AddBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error
	// RemoveBookmark удаляет закладку. Если её не было — ErrNotFound.
	RemoveBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error
	// BookmarkedRecipes возвращает рецепты из закладок пользователя
	// в исходном порядке каталога.
	BookmarkedRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
}

// Storage задаёт контракт доступа к хранилищу для recipe-service.
type Storage interface {
	RecipeStorage
	BookmarkStorage
	Close()
}
