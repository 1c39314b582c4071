package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recipeDoc — документ коллекции recipes; _id совпадает с идентификатором рецепта.
type recipeDoc struct {
	ID              int64           `bson:"_id"`
	Position        int64           `bson:"position"`
	Category        string          `bson:"category"`
	Title           string          `bson:"title"`
	ThumbnailURL    string          `bson:"thumbnail_url"`
	Chef            string          `bson:"chef"`
	CookingDuration string          `bson:"cooking_duration"`
	StarRate        float64         `bson:"star_rate"`
	CreatedAt       string          `bson:"created_at"`
	Ingredients     []ingredientDoc `bson:"ingredients"`
	FetchedAt       time.Time       `bson:"fetched_at"`
}

type ingredientDoc struct {
	ID       int64  `bson:"id"`
	Name     string `bson:"name"`
	ImageURL string `bson:"image_url"`
	Weight   int    `bson:"weight"`
}

func (d recipeDoc) toModel() models.Recipe {
	ingredients := make([]models.Ingredient, 0, len(d.Ingredients))
	for _, it := range d.Ingredients {
		ingredients = append(ingredients, models.Ingredient(it))
	}

	return models.Recipe{
		ID:              d.ID,
		Category:        d.Category,
		Title:           d.Title,
		ThumbnailURL:    d.ThumbnailURL,
		Chef:            d.Chef,
		CookingDuration: d.CookingDuration,
		StarRate:        d.StarRate,
		CreatedAt:       d.CreatedAt,
		Ingredients:     ingredients,
	}
}

// SaveRecipes сохраняет пачку рецептов с upsert по _id.
//
// Под пачку резервируется диапазон position одним $inc счётчика;
// значение попадает в документ только через $setOnInsert, поэтому
// у существующих рецептов исходная позиция не меняется.
func (m *Mongo) SaveRecipes(ctx context.Context, items []models.Recipe) error {
	const op = "storage/mongo/SaveRecipes"

	if len(items) == 0 {
		return nil
	}

	last, err := m.reservePositions(ctx, int64(len(items)))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	first := last - int64(len(items)) + 1

	now := time.Now().UTC().Truncate(time.Millisecond)
	writes := make([]mongodriver.WriteModel, 0, len(items))
	for i, item := range items {
		ingredients := make([]ingredientDoc, 0, len(item.Ingredients))
		for _, it := range item.Ingredients {
			ingredients = append(ingredients, ingredientDoc(it))
		}

		writes = append(writes, mongodriver.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: item.ID}}).
			SetUpdate(bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "category", Value: item.Category},
					{Key: "title", Value: item.Title},
					{Key: "thumbnail_url", Value: item.ThumbnailURL},
					{Key: "chef", Value: item.Chef},
					{Key: "cooking_duration", Value: item.CookingDuration},
					{Key: "star_rate", Value: item.StarRate},
					{Key: "created_at", Value: item.CreatedAt},
					{Key: "ingredients", Value: ingredients},
					{Key: "fetched_at", Value: now},
				}},
				{Key: "$setOnInsert", Value: bson.D{
					{Key: "position", Value: first + int64(i)},
				}},
			}).
			SetUpsert(true))
	}

	if _, err := m.recipes.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("%s: bulk write: %w", op, err)
	}

	return nil
}

// reservePositions увеличивает счётчик на n и возвращает его новое значение.
func (m *Mongo) reservePositions(ctx context.Context, n int64) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := m.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: positionCounterID}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: n}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("reserve positions: %w", err)
	}

	return counter.Seq, nil
}

// ListRecipes возвращает рецепты в исходном порядке (position asc).
func (m *Mongo) ListRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	const op = "storage/mongo/ListRecipes"

	filter := bson.D{}
	if category != "" {
		filter = bson.D{{Key: "category", Value: category}}
	}

	out, err := m.findRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// RecipeByID возвращает рецепт по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) RecipeByID(ctx context.Context, id int64) (*models.Recipe, error) {
	const op = "storage/mongo/RecipeByID"

	var doc recipeDoc
	if err := m.recipes.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// findRecipes выполняет выборку с сортировкой по position и всегда возвращает не-nil срез.
func (m *Mongo) findRecipes(ctx context.Context, filter bson.D) ([]models.Recipe, error) {
	cur, err := m.recipes.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.Recipe, 0)
	for cur.Next(ctx) {
		var doc recipeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}

		out = append(out, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return out, nil
}
