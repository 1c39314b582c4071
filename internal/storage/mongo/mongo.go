// mongo предоставляет реализацию storage.Storage на базе MongoDB.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	recipesCollection   = "recipes"
	bookmarksCollection = "bookmarks"
	countersCollection  = "counters"
	defaultDBName       = "recipes"

	// positionCounterID — документ-счётчик, выдающий position при первой вставке рецепта.
	positionCounterID = "recipes_position"

	closeTimeout = 5 * time.Second
)

// Mongo - тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	client    *mongodriver.Client
	db        *mongodriver.Database
	recipes   *mongodriver.Collection
	bookmarks *mongodriver.Collection
	counters  *mongodriver.Collection
}

var _ storage.Storage = (*Mongo)(nil)

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции и индексы.
func New(ctx context.Context, dbURL string) (*Mongo, error) {
	if strings.TrimSpace(dbURL) == "" {
		return nil, fmt.Errorf("mongo: empty db url")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(dbURL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(dbURL))

	m := &Mongo{
		client:    cli,
		db:        db,
		recipes:   db.Collection(recipesCollection),
		bookmarks: db.Collection(bookmarksCollection),
		counters:  db.Collection(countersCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		m.Close()
		return nil, err
	}

	return m, nil
}

// Close отключается от MongoDB.
func (m *Mongo) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	_ = m.client.Disconnect(ctx)
}

// ensureIndexes создает индексы:
// - список рецептов: position(asc) и category + position(asc);
// - закладки: уникальная пара user_id + recipe_id.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.recipes.Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("position_asc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index().SetName("category_position_asc"),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo ensure recipe indexes: %w", err)
	}

	_, err = m.bookmarks.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "recipe_id", Value: 1}},
		Options: options.Index().SetName("user_recipe_unique").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo ensure bookmark indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}
