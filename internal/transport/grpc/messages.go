package grpc

import "github.com/pribylovaa/go-recipe-catalog/internal/models"

// Сообщения RecipeService. Имена полей совпадают с REST-представлением.

type Ingredient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Weight   int    `json:"weight"`
}

type Recipe struct {
	ID              int64        `json:"id"`
	Category        string       `json:"category"`
	Title           string       `json:"title"`
	ThumbnailURL    string       `json:"thumbnailUrl"`
	Chef            string       `json:"chef"`
	CookingDuration string       `json:"cookingDuration"`
	StarRate        float64      `json:"starRate"`
	CreatedAt       string       `json:"createdAt"`
	Ingredients     []Ingredient `json:"ingredients"`
}

type ListRecipesRequest struct {
	// Filter — отображаемое имя критерия (All, Newest, Oldest, Popularity); пусто — All.
	Filter    string `json:"filter,omitempty"`
	Category  string `json:"category,omitempty"`
	Limit     int32  `json:"limit,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListRecipesResponse struct {
	Items         []Recipe `json:"items"`
	NextPageToken string   `json:"next_page_token"`
}

type GetRecipeRequest struct {
	ID int64 `json:"id"`
}

type GetRecipeResponse struct {
	Item Recipe `json:"item"`
}

type ListFiltersRequest struct{}

type Filter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ListFiltersResponse struct {
	Filters []Filter `json:"filters"`
}

// toRecipe конвертирует доменную модель Recipe в сообщение.
func toRecipe(r models.Recipe) Recipe {
	ingredients := make([]Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			ImageURL: ing.ImageURL,
			Weight:   ing.Weight,
		})
	}

	return Recipe{
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
