// cache хранит списки рецептов в исходном порядке каталога, сгруппированные по категории.
// Сортировка и пагинация выполняются поверх закэшированного списка.
//
// Ключи списков включают поколение кэша. Invalidate увеличивает поколение,
// поэтому Set снимка, прочитанного до инвалидации, пишет в ключ, который
// больше никто не читает (он истекает по TTL).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/redis/go-redis/v9"
)

// defaultPrefix — префикс ключей по умолчанию.
const defaultPrefix = "recipes:list:"

// allCategories — суффикс ключа для списка без фильтра по категории.
const allCategories = "*all"

// generationKey — суффикс ключа счётчика поколений.
const generationKey = "gen"

// scanCount — подсказка размера пачки для SCAN при инвалидации.
const scanCount = 100

// ListCache — минимальный контракт кэша списков рецептов.
type ListCache interface {
	// Get возвращает список, текущее поколение кэша и признак попадания.
	// Поколение возвращается и при промахе: его нужно передать в Set.
	Get(ctx context.Context, category string) ([]models.Recipe, int64, bool, error)
	// Set сохраняет список, прочитанный в поколении gen, с TTL кэша.
	Set(ctx context.Context, gen int64, category string, items []models.Recipe) error
	// Invalidate делает недоступными все закэшированные списки.
	Invalidate(ctx context.Context) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "recipes:list:".
func NewRedisCache(ctx context.Context, redisURL, prefix string, ttl time.Duration) (ListCache, error) {
	if prefix == "" {
		prefix = defaultPrefix
	}

	if ttl <= 0 {
		return nil, errors.New("cache: ttl must be > 0")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(gen int64, category string) string {
	return c.generationPrefix(gen) + categorySuffix(category)
}

// generationPrefix — общий префикс всех списков поколения gen.
func (c *redisCache) generationPrefix(gen int64) string {
	return c.prefix + "v" + strconv.FormatInt(gen, 10) + ":"
}

func categorySuffix(category string) string {
	if category == "" {
		return allCategories
	}

	return "cat:" + category
}

// generation читает текущее поколение; отсутствие счётчика — поколение 0.
func (c *redisCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.prefix+generationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, fmt.Errorf("cache: generation: %w", err)
	}

	return gen, nil
}

// recipeEntry — JSON-представление рецепта в кэше.
type recipeEntry struct {
	ID              int64             `json:"id"`
	Category        string            `json:"category"`
	Title           string            `json:"title"`
	ThumbnailURL    string            `json:"thumbnail_url"`
	Chef            string            `json:"chef"`
	CookingDuration string            `json:"cooking_duration"`
	StarRate        float64           `json:"star_rate"`
	CreatedAt       string            `json:"created_at"`
	Ingredients     []ingredientEntry `json:"ingredients"`
}

type ingredientEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Weight   int    `json:"weight"`
}

func (c *redisCache) Get(ctx context.Context, category string) ([]models.Recipe, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	raw, err := c.rdb.Get(ctx, c.key(gen, category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, false, nil
		}

		return nil, 0, false, err
	}

	var entries []recipeEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, 0, false, fmt.Errorf("cache: decode: %w", err)
	}

	out := make([]models.Recipe, 0, len(entries))
	for _, e := range entries {
		ingredients := make([]models.Ingredient, 0, len(e.Ingredients))
		for _, it := range e.Ingredients {
			ingredients = append(ingredients, models.Ingredient(it))
		}

		out = append(out, models.Recipe{
			ID:              e.ID,
			Category:        e.Category,
			Title:           e.Title,
			ThumbnailURL:    e.ThumbnailURL,
			Chef:            e.Chef,
			CookingDuration: e.CookingDuration,
			StarRate:        e.StarRate,
			CreatedAt:       e.CreatedAt,
			Ingredients:     ingredients,
		})
	}

	return out, gen, true, nil
}

func (c *redisCache) Set(ctx context.Context, gen int64, category string, items []models.Recipe) error {
	entries := make([]recipeEntry, 0, len(items))
	for _, r := range items {
		ingredients := make([]ingredientEntry, 0, len(r.Ingredients))
		for _, it := range r.Ingredients {
			ingredients = append(ingredients, ingredientEntry(it))
		}

		entries = append(entries, recipeEntry{
			ID:              r.ID,
			Category:        r.Category,
			Title:           r.Title,
			ThumbnailURL:    r.ThumbnailURL,
			Chef:            r.Chef,
			CookingDuration: r.CookingDuration,
			StarRate:        r.StarRate,
			CreatedAt:       r.CreatedAt,
			Ingredients:     ingredients,
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	return c.rdb.Set(ctx, c.key(gen, category), raw, c.ttl).Err()
}

// Invalidate увеличивает поколение, затем удаляет списки прежних поколений
// (SCAN + одна транзакция DEL). Ключи нового поколения не трогаются.
func (c *redisCache) Invalidate(ctx context.Context) error {
	gen, err := c.rdb.Incr(ctx, c.prefix+generationKey).Result()
	if err != nil {
		return fmt.Errorf("cache: bump generation: %w", err)
	}

	current := c.generationPrefix(gen)

	var (
		keys   []string
		cursor uint64
	)

	for {
		batch, next, err := c.rdb.Scan(ctx, cursor, c.prefix+"v*", scanCount).Result()
		if err != nil {
			return fmt.Errorf("cache: scan: %w", err)
		}

		for _, k := range batch {
			if !strings.HasPrefix(k, current) {
				keys = append(keys, k)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return nil
	}

	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, keys...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache: delete stale lists: %w", err)
	}

	return nil
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// Noop — кэш-заглушка для конфигурации без Redis: всегда промах.
type Noop struct{}

var _ ListCache = Noop{}

func (Noop) Get(context.Context, string) ([]models.Recipe, int64, bool, error) {
	return nil, 0, false, nil
}

func (Noop) Set(context.Context, int64, string, []models.Recipe) error { return nil }

func (Noop) Invalidate(context.Context) error { return nil }

func (Noop) Close() error { return nil }
