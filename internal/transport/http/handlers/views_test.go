package handlers

import (
	"encoding/json"
	"testing"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/stretchr/testify/require"
)

func TestRecipeFromModel_WireNames(t *testing.T) {
	r := models.Recipe{
		ID:              1,
		Category:        "Desserts",
		Title:           "Cake",
		ThumbnailURL:    "https://img/cake.png",
		Chef:            "Ann",
		CookingDuration: "40 min",
		StarRate:        4.5,
		CreatedAt:       "2024-01-01",
		Ingredients: []models.Ingredient{
			{ID: 9, Name: "Sugar", ImageURL: "https://img/sugar.png", Weight: 100},
		},
	}

	b, err := json.Marshal(RecipeFromModel(r))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id": 1,
		"category": "Desserts",
		"title": "Cake",
		"thumbnailUrl": "https://img/cake.png",
		"chef": "Ann",
		"cookingDuration": "40 min",
		"starRate": 4.5,
		"createdAt": "2024-01-01",
		"ingredients": [{"id": 9, "name": "Sugar", "imageUrl": "https://img/sugar.png", "weight": 100}]
	}`, string(b))
}

func TestRecipeFromModel_NilIngredientsAsEmptyArray(t *testing.T) {
	b, err := json.Marshal(RecipeFromModel(models.Recipe{ID: 2}))
	require.NoError(t, err)
	require.Contains(t, string(b), `"ingredients":[]`)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseID(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}
