// catalog содержит ядро каталога: нормализацию «сырых» записей источника
// в доменные и упорядочивание рецептов по критериям фильтра.
//
// Все функции пакета чистые: не выполняют I/O, не хранят состояние
// и определены для любых входных данных.
package catalog

import "github.com/pribylovaa/go-recipe-catalog/internal/models"

// NormalizeRecipe превращает RawRecipe в models.Recipe.
//
// Правила:
//   - присутствующее поле копируется как есть;
//   - отсутствующее заменяется значением по умолчанию ("" / 0 / 0.0);
//   - ингредиенты нормализуются поэлементно с сохранением порядка,
//     отсутствующий список даёт пустой (не nil) срез.
func NormalizeRecipe(raw models.RawRecipe) models.Recipe {
	ingredients := make([]models.Ingredient, 0, len(raw.Ingredients))
	for _, ing := range raw.Ingredients {
		ingredients = append(ingredients, NormalizeIngredient(ing))
	}

	return models.Recipe{
		Category:        valueOr(raw.Category, ""),
		ID:              valueOr(raw.ID, 0),
		Title:           valueOr(raw.Title, ""),
		ThumbnailURL:    valueOr(raw.ThumbnailURL, ""),
		Chef:            valueOr(raw.Chef, ""),
		CookingDuration: valueOr(raw.CookingDuration, ""),
		StarRate:        valueOr(raw.StarRate, 0.0),
		CreatedAt:       valueOr(raw.CreatedAt, ""),
		Ingredients:     ingredients,
	}
}

// NormalizeIngredient превращает RawIngredient в models.Ingredient по тем же правилам.
func NormalizeIngredient(raw models.RawIngredient) models.Ingredient {
	return models.Ingredient{
		ID:       valueOr(raw.ID, 0),
		Name:     valueOr(raw.Name, ""),
		ImageURL: valueOr(raw.ImageURL, ""),
		Weight:   valueOr(raw.Weight, 0),
	}
}

// NormalizeRecipes нормализует пачку записей, сохраняя порядок.
func NormalizeRecipes(raws []models.RawRecipe) []models.Recipe {
	out := make([]models.Recipe, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeRecipe(raw))
	}

	return out
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}
