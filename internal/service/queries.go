package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-recipe-catalog/internal/catalog"
	"github.com/pribylovaa/go-recipe-catalog/internal/metrics"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
	"github.com/pribylovaa/go-recipe-catalog/pkg/log"
)

// ListRecipes возвращает страницу рецептов, упорядоченных по критерию opts.Criterion.
//
// Правила нормализации:
// - limit <= 0 -> cfg.LimitsConfig.Default;
// - limit > max -> cfg.LimitsConfig.Max;
// - пустой pageToken -> первая страница.
//
// Список категории берётся из кэша, при промахе — из стораджа с заполнением кэша.
// Ошибки кэша не видны клиенту: выборка деградирует до чтения стораджа.
//
// Ошибки:
// - ErrInvalidCursor — битый/чужой page_token;
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) ListRecipes(ctx context.Context, opts models.ListOptions) (*models.Page, error) {
	const op = "service.queries.ListRecipes"

	lg := log.From(ctx)
	lg.Info("list_recipes_request",
		slog.String("op", op),
		slog.String("filter", opts.Criterion.Label()),
		slog.String("category", opts.Category),
		slog.Int("limit", int(opts.Limit)),
		slog.Bool("has_page_token", opts.PageToken != ""),
	)

	if opts.Limit <= 0 {
		opts.Limit = s.cfg.LimitsConfig.Default
	}

	if s.cfg.LimitsConfig.Max > 0 && opts.Limit > s.cfg.LimitsConfig.Max {
		opts.Limit = s.cfg.LimitsConfig.Max
	}

	offset := 0
	if opts.PageToken != "" {
		var err error
		offset, err = decodePageToken(opts.PageToken, opts.Criterion, opts.Category)
		if err != nil {
			lg.Warn("list_recipes_invalid_cursor",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}
	}

	items, err := s.categoryRecipes(ctx, opts.Category)
	if err != nil {
		lg.Error("list_recipes_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ordered := catalog.Select(items, opts.Criterion)

	page := &models.Page{Items: []models.Recipe{}}
	if offset < len(ordered) {
		end := offset + int(opts.Limit)
		if end > len(ordered) {
			end = len(ordered)
		}

		page.Items = ordered[offset:end]
		if end < len(ordered) {
			page.NextPageToken = encodePageToken(opts.Criterion, opts.Category, end)
		}
	}

	lg.Info("list_recipes_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Items)),
		slog.Bool("has_next_page", page.NextPageToken != ""),
	)

	return page, nil
}

// RecipeByID возвращает рецепт по идентификатору.
//
// Ошибки:
// - ErrInvalidArgument — id <= 0;
// - ErrNotFound — если запись отсутствует (маппинг storage.ErrNotFound);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) RecipeByID(ctx context.Context, id int64) (*models.Recipe, error) {
	const op = "service.queries.RecipeByID"

	lg := log.From(ctx)

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w: id must be positive", op, ErrInvalidArgument)
	}

	recipe, err := s.storage.RecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("recipe_by_id_not_found",
				slog.String("op", op),
				slog.Int64("id", id),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("recipe_by_id_storage_error",
			slog.String("op", op),
			slog.Int64("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return recipe, nil
}

// Filters возвращает все критерии выборки в порядке отображения.
func (s *Service) Filters() []models.FilterCriterion {
	return models.FilterCriteria()
}

// categoryRecipes возвращает рецепты категории в исходном порядке каталога.
func (s *Service) categoryRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	const op = "service.queries.categoryRecipes"

	lg := log.From(ctx)

	// Поколение читается до стораджа: если между чтением и Set каталог
	// перезапишут с инвалидацией, снимок уйдёт в устаревшее поколение.
	cached, gen, ok, err := s.cache.Get(ctx, category)
	cacheable := err == nil
	switch {
	case err != nil:
		s.metrics.CacheRequests.WithLabelValues(metrics.CacheError).Inc()
		lg.Warn("cache_get_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	case ok:
		s.metrics.CacheRequests.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	default:
		s.metrics.CacheRequests.WithLabelValues(metrics.CacheMiss).Inc()
	}

	items, err := s.storage.ListRecipes(ctx, category)
	if err != nil {
		return nil, err
	}

	if !cacheable {
		return items, nil
	}

	if err := s.cache.Set(ctx, gen, category, items); err != nil {
		lg.Warn("cache_set_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	return items, nil
}

// encodePageToken кодирует смещение вместе с критерием и категорией
// в непрозрачный токен для клиента.
func encodePageToken(c models.FilterCriterion, category string, offset int) string {
	raw := c.Key() + "|" + strconv.Itoa(offset) + "|" + category

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен и проверяет, что он выпущен для той же выборки.
func decodePageToken(token string, c models.FilterCriterion, category string) (int, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return 0, err
	}

	parts := strings.SplitN(string(res), "|", 3)
	if len(parts) != 3 {
		return 0, errors.New("bad parts")
	}

	if parts[0] != c.Key() || parts[2] != category {
		return 0, errors.New("token belongs to another listing")
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}

	if offset <= 0 {
		return 0, errors.New("non-positive offset")
	}

	return offset, nil
}
