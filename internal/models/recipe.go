// models содержит доменные сущности recipe-service и «сырые» записи внешних источников.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe — доменная сущность рецепта.
//
// Особенности:
//   - все поля всегда заполнены: отсутствие значения в источнике
//     заменяется значением по умолчанию при нормализации (см. catalog.NormalizeRecipe);
//   - CreatedAt — строка в том виде, в каком её прислал источник;
//     хронологическое сравнение выполняет catalog.Select;
//   - Ingredients никогда не nil, порядок совпадает с источником.
type Recipe struct {
	// ID — идентификатор рецепта у источника. По нему ключуются закладки.
	ID int64
	// Category — категория рецепта.
	Category string
	// Title — название рецепта.
	Title string
	// ThumbnailURL — ссылка на обложку.
	ThumbnailURL string
	// Chef — автор рецепта.
	Chef string
	// CookingDuration — время приготовления (например, "20 min").
	CookingDuration string
	// StarRate — рейтинг рецепта.
	StarRate float64
	// CreatedAt — дата создания рецепта у источника.
	CreatedAt string
	// Ingredients — упорядоченный список ингредиентов.
	Ingredients []Ingredient
}

// Ingredient — доменная сущность ингредиента.
type Ingredient struct {
	ID       int64
	Name     string
	ImageURL string
	// Weight — вес в граммах.
	Weight int
}

// RawRecipe — запись рецепта в том виде, в каком её отдаёт внешний источник.
// Любое поле может отсутствовать: nil означает «нет значения» (ключ пропущен или null).
type RawRecipe struct {
	Category        *string         `json:"category"`
	ID              *int64          `json:"id"`
	Title           *string         `json:"title"`
	ThumbnailURL    *string         `json:"thumbnailUrl"`
	Chef            *string         `json:"chef"`
	CookingDuration *string         `json:"cookingDuration"`
	StarRate        *float64        `json:"starRate"`
	CreatedAt       *string         `json:"createdAt"`
	Ingredients     []RawIngredient `json:"ingredients"`
}

// RawIngredient — «сырой» ингредиент внешнего источника.
type RawIngredient struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
	Weight   *int    `json:"weight"`
}

// Raw возвращает «сырое» представление рецепта, в котором заданы все поля.
// Нормализация результата даёт исходный рецепт.
func (r Recipe) Raw() RawRecipe {
	ingredients := make([]RawIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, ing.Raw())
	}

	return RawRecipe{
		Category:        ptr(r.Category),
		ID:              ptr(r.ID),
		Title:           ptr(r.Title),
		ThumbnailURL:    ptr(r.ThumbnailURL),
		Chef:            ptr(r.Chef),
		CookingDuration: ptr(r.CookingDuration),
		StarRate:        ptr(r.StarRate),
		CreatedAt:       ptr(r.CreatedAt),
		Ingredients:     ingredients,
	}
}

// Raw возвращает «сырое» представление ингредиента с заполненными полями.
func (i Ingredient) Raw() RawIngredient {
	return RawIngredient{
		ID:       ptr(i.ID),
		Name:     ptr(i.Name),
		ImageURL: ptr(i.ImageURL),
		Weight:   ptr(i.Weight),
	}
}

func ptr[T any](v T) *T { return &v }

// Bookmark — закладка пользователя на рецепт.
type Bookmark struct {
	UserID   uuid.UUID
	RecipeID int64
	// CreatedAt — время добавления закладки (UTC).
	CreatedAt time.Time
}

// ListOptions — параметры выборки каталога.
//
// Особенности:
//   - при Limit <= 0 применяется серверный default (config.LimitsConfig.Default);
//   - Category == "" — без фильтра по категории;
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Criterion FilterCriterion
	Category  string
	Limit     int32
	PageToken string
}

// Page — страница результатов со ссылкой на продолжение.
type Page struct {
	Items         []Recipe
	NextPageToken string
}
