package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
)

// AddBookmark добавляет закладку. Повторное добавление — no-op.
// Если рецепта нет (нарушение внешнего ключа) — storage.ErrNotFound.
func (s *Storage) AddBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	const op = "storage.postgres.AddBookmark"

	_, err := s.db.Exec(ctx, `
	INSERT INTO bookmarks (user_id, recipe_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, recipe_id) DO NOTHING
	`, userID, recipeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveBookmark удаляет закладку. Если её не было — storage.ErrNotFound.
func (s *Storage) RemoveBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	const op = "storage.postgres.RemoveBookmark"

	tag, err := s.db.Exec(ctx, `
	DELETE FROM bookmarks
	WHERE user_id = $1 AND recipe_id = $2
	`, userID, recipeID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// BookmarkedRecipes возвращает рецепты из закладок пользователя в исходном порядке каталога.
func (s *Storage) BookmarkedRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	const op = "storage.postgres.BookmarkedRecipes"

	rows, err := s.db.Query(ctx, `
	SELECT r.id, r.category, r.title, r.thumbnail_url, r.chef, r.cooking_duration, r.star_rate, r.created_at, r.ingredients
	FROM recipes r
	JOIN bookmarks b ON b.recipe_id = r.id
	WHERE b.user_id = $1
	ORDER BY r.position ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out, err := collectRecipes(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
