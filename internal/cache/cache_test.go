package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Запуск интеграционных тестов локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -count=1

func startRedis(t *testing.T) string {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func sample() []models.Recipe {
	return []models.Recipe{
		{
			ID: 2, Category: "Asian", Title: "Ramen", ThumbnailURL: "t", Chef: "Kenji",
			CookingDuration: "40 min", StarRate: 4.5, CreatedAt: "2024-03-01",
			Ingredients: []models.Ingredient{{ID: 1, Name: "Noodles", ImageURL: "i", Weight: 200}},
		},
		{ID: 1, Category: "Asian", Title: "Rice", Ingredients: []models.Ingredient{}},
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var c ListCache = Noop{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, "", sample()))

	got, gen, ok, err := c.Get(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
	require.Zero(t, gen)

	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Close())
}

func TestNewRedisCache_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := NewRedisCache(ctx, "redis://localhost:6379/0", "", 0)
	require.Error(t, err)

	_, err = NewRedisCache(ctx, "not-a-url", "", time.Minute)
	require.Error(t, err)
}

func TestKey(t *testing.T) {
	t.Parallel()

	c := &redisCache{prefix: "p:"}
	require.Equal(t, "p:v0:*all", c.key(0, ""))
	require.Equal(t, "p:v3:cat:Asian", c.key(3, "Asian"))
	require.NotEqual(t, c.key(0, ""), c.key(0, "*all"))
	require.NotEqual(t, c.key(1, "Asian"), c.key(2, "Asian"))
	// Счётчик поколений не попадает под шаблон SCAN списков (prefix + "v*").
	require.NotContains(t, c.prefix+generationKey, c.prefix+"v")
}

func TestIntegration_RedisCache(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	c, err := NewRedisCache(ctx, url, "test:list:", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, gen, ok, err := c.Get(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, gen, "", sample()))
	require.NoError(t, c.Set(ctx, gen, "Asian", sample()[:1]))
	require.NoError(t, c.Set(ctx, gen, "Empty", []models.Recipe{}))

	got, gotGen, ok, err := c.Get(ctx, "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, gen, gotGen)
	require.Equal(t, sample(), got)

	got, _, ok, err = c.Get(ctx, "Empty")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, got)

	require.NoError(t, c.Invalidate(ctx))

	for _, cat := range []string{"", "Asian", "Empty"} {
		_, newGen, ok, err := c.Get(ctx, cat)
		require.NoError(t, err)
		require.False(t, ok, cat)
		require.Greater(t, newGen, gen)
	}

	// Инвалидация пустого кэша — не ошибка.
	require.NoError(t, c.Invalidate(ctx))
}

// TestIntegration_RedisCache_StaleSetAfterInvalidate — список, прочитанный
// до инвалидации и записанный после неё, не виден следующему Get.
func TestIntegration_RedisCache_StaleSetAfterInvalidate(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	c, err := NewRedisCache(ctx, url, "stale:list:", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, gen, ok, err := c.Get(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)

	// Между чтением стораджа и Set прошла запись каталога с инвалидацией.
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, gen, "", []models.Recipe{}))

	_, newGen, ok, err := c.Get(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, gen+1, newGen)

	// Set в текущем поколении виден.
	require.NoError(t, c.Set(ctx, newGen, "", sample()))
	got, _, ok, err := c.Get(ctx, "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sample(), got)
}
