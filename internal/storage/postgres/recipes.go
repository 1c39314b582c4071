package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
)

const recipeColumns = `id, category, title, thumbnail_url, chef, cooking_duration, star_rate, created_at, ingredients`

// ingredientRow — представление ингредиента в колонке ingredients (JSONB).
type ingredientRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Weight   int    `json:"weight"`
}

// SaveRecipes сохраняет пачку рецептов с upsert по id.
//
// Политика обновления:
//   - все поля рецепта перезаписываются значениями источника;
//   - position выдаётся последовательностью только при первой вставке и не меняется,
//     поэтому исходный порядок каталога определяется порядком первого появления рецепта;
//   - fetched_at обновляется всегда.
func (s *Storage) SaveRecipes(ctx context.Context, items []models.Recipe) error {
	const op = "storage.postgres.SaveRecipes"

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		ingredients, err := encodeIngredients(item.Ingredients)
		if err != nil {
			return fmt.Errorf("%s: recipe %d: %w", op, item.ID, err)
		}

		batch.Queue(`
		INSERT INTO recipes (id, category, title, thumbnail_url, chef, cooking_duration, star_rate, created_at, ingredients, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (id) DO UPDATE
		SET
		category = EXCLUDED.category,
		title = EXCLUDED.title,
		thumbnail_url = EXCLUDED.thumbnail_url,
		chef = EXCLUDED.chef,
		cooking_duration = EXCLUDED.cooking_duration,
		star_rate = EXCLUDED.star_rate,
		created_at = EXCLUDED.created_at,
		ingredients = EXCLUDED.ingredients,
		fetched_at = EXCLUDED.fetched_at
		`, item.ID, item.Category, item.Title, item.ThumbnailURL, item.Chef, item.CookingDuration,
			item.StarRate, item.CreatedAt, ingredients)
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}
	}

	return nil
}

// ListRecipes возвращает рецепты в исходном порядке (position ASC).
func (s *Storage) ListRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	const op = "storage.postgres.ListRecipes"

	rows, err := s.db.Query(ctx, `
	SELECT `+recipeColumns+`
	FROM recipes
	WHERE ($1 = '' OR category = $1)
	ORDER BY position ASC
	`, category)
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

// RecipeByID возвращает рецепт по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) RecipeByID(ctx context.Context, id int64) (*models.Recipe, error) {
	const op = "storage.postgres.RecipeByID"

	row := s.db.QueryRow(ctx, `
	SELECT `+recipeColumns+`
	FROM recipes
	WHERE id = $1
	`, id)

	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &recipe, nil
}

// collectRecipes вычитывает все строки выборки.
func collectRecipes(rows pgx.Rows) ([]models.Recipe, error) {
	out := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		out = append(out, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return out, nil
}

// scanRecipe сканирует строку с колонками recipeColumns.
func scanRecipe(row pgx.Row) (models.Recipe, error) {
	var (
		recipe      models.Recipe
		ingredients []byte
	)

	if err := row.Scan(
		&recipe.ID,
		&recipe.Category,
		&recipe.Title,
		&recipe.ThumbnailURL,
		&recipe.Chef,
		&recipe.CookingDuration,
		&recipe.StarRate,
		&recipe.CreatedAt,
		&ingredients,
	); err != nil {
		return models.Recipe{}, err
	}

	decoded, err := decodeIngredients(ingredients)
	if err != nil {
		return models.Recipe{}, err
	}
	recipe.Ingredients = decoded

	return recipe, nil
}

func encodeIngredients(items []models.Ingredient) ([]byte, error) {
	rows := make([]ingredientRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, ingredientRow(it))
	}

	return json.Marshal(rows)
}

// decodeIngredients всегда возвращает не-nil срез.
func decodeIngredients(raw []byte) ([]models.Ingredient, error) {
	out := make([]models.Ingredient, 0)
	if len(raw) == 0 {
		return out, nil
	}

	var rows []ingredientRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}

	for _, r := range rows {
		out = append(out, models.Ingredient(r))
	}

	return out, nil
}
