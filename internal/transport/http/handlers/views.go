package handlers

import "github.com/pribylovaa/go-recipe-catalog/internal/models"

// RecipeView — JSON-представление рецепта, совпадает с форматом удалённых фидов.
type RecipeView struct {
	ID              int64            `json:"id"`
	Category        string           `json:"category"`
	Title           string           `json:"title"`
	ThumbnailURL    string           `json:"thumbnailUrl"`
	Chef            string           `json:"chef"`
	CookingDuration string           `json:"cookingDuration"`
	StarRate        float64          `json:"starRate"`
	CreatedAt       string           `json:"createdAt"`
	Ingredients     []IngredientView `json:"ingredients"`
}

type IngredientView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Weight   int    `json:"weight"`
}

type RecipeListView struct {
	Items         []RecipeView `json:"items"`
	NextPageToken string       `json:"next_page_token"`
}

type BookmarkListView struct {
	Items []RecipeView `json:"items"`
}

// FilterView — критерий фильтрации: стабильный id и отображаемое имя.
type FilterView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func RecipeFromModel(r models.Recipe) RecipeView {
	ingredients := make([]IngredientView, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, IngredientView{
			ID:       ing.ID,
			Name:     ing.Name,
			ImageURL: ing.ImageURL,
			Weight:   ing.Weight,
		})
	}

	return RecipeView{
		ID:              r.ID,
		Category:        r.Category,
		Title:           r.Title,
		ThumbnailURL:    r.ThumbnailURL,
		Chef:            r.Chef,
		CookingDuration: r.CookingDuration,
		StarRate:        r.StarRate,
		CreatedAt:       r.CreatedAt,
		Ingredients:     ingredients,
	}
}

func recipesFromModels(items []models.Recipe) []RecipeView {
	out := make([]RecipeView, 0, len(items))
	for _, r := range items {
		out = append(out, RecipeFromModel(r))
	}

	return out
}

func FiltersFromModels(cs []models.FilterCriterion) []FilterView {
	out := make([]FilterView, 0, len(cs))
	for _, c := range cs {
		out = append(out, FilterView{ID: c.Key(), Label: c.Label()})
	}

	return out
}
