package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookmarkDoc struct {
	UserID    string    `bson:"user_id"`
	RecipeID  int64     `bson:"recipe_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// AddBookmark добавляет закладку. Повторное добавление ничего не меняет.
// Если рецепта нет — storage.ErrNotFound.
func (m *Mongo) AddBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	const op = "storage/mongo/AddBookmark"

	n, err := m.recipes.CountDocuments(ctx, bson.D{{Key: "_id", Value: recipeID}}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("%s: count recipe: %w", op, err)
	}

	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	filter := bson.D{{Key: "user_id", Value: userID.String()}, {Key: "recipe_id", Value: recipeID}}
	_, err = m.bookmarks.UpdateOne(ctx, filter,
		bson.D{{Key: "$setOnInsert", Value: bson.D{
			{Key: "created_at", Value: time.Now().UTC().Truncate(time.Millisecond)},
		}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// Гонка двух upsert'ов упирается в уникальный индекс: закладка уже есть.
		if mongodriver.IsDuplicateKeyError(err) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveBookmark удаляет закладку. Если её не было — storage.ErrNotFound.
func (m *Mongo) RemoveBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	const op = "storage/mongo/RemoveBookmark"

	res, err := m.bookmarks.DeleteOne(ctx, bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "recipe_id", Value: recipeID},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// BookmarkedRecipes возвращает рецепты из закладок пользователя в исходном порядке каталога.
func (m *Mongo) BookmarkedRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	const op = "storage/mongo/BookmarkedRecipes"

	cur, err := m.bookmarks.Find(ctx, bson.D{{Key: "user_id", Value: userID.String()}})
	if err != nil {
		return nil, fmt.Errorf("%s: find bookmarks: %w", op, err)
	}

	var docs []bookmarkDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: decode bookmarks: %w", op, err)
	}

	if len(docs) == 0 {
		return []models.Recipe{}, nil
	}

	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.RecipeID)
	}

	out, err := m.findRecipes(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
