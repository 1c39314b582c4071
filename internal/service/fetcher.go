package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-recipe-catalog/internal/catalog"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/pkg/log"
)

// StartIngest запускает периодический опрос источников из конфига s.cfg.Source.
//
// Особенности:
//   - первый проход выполняется сразу, далее — по тикеру;
//   - ошибки прохода логируются и не останавливают цикл;
//   - останавливается по ctx.
func (s *Service) StartIngest(ctx context.Context, src Source) error {
	const op = "service.fetcher.StartIngest"

	urls := s.cfg.Source.URLs
	interval := s.cfg.Source.Interval

	if len(urls) == 0 {
		return fmt.Errorf("%s: no sources configured", op)
	}

	if interval <= 0 {
		return fmt.Errorf("%s: non-positive interval %s", op, interval)
	}

	lg := log.From(ctx)
	lg.Info("ingest_start",
		slog.String("op", op),
		slog.Int("sources", len(urls)),
		slog.Duration("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := s.ingestOnce(ctx, src, urls); err != nil {
		lg.Warn("ingest_tick_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	for {
		select {
		case <-ctx.Done():
			lg.Info("ingest_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if err := s.ingestOnce(ctx, src, urls); err != nil {
				lg.Warn("ingest_tick_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

// ingestOnce — один проход: загрузка всех источников, нормализация, сохранение.
//
// Результаты собираются в порядке urls, а не в порядке завершения загрузок,
// чтобы исходный порядок каталога не зависел от сети. Записи без идентификатора
// отбрасываются; повтор идентификатора внутри прохода сохраняет первое вхождение.
func (s *Service) ingestOnce(ctx context.Context, src Source, urls []string) error {
	const op = "service.fetcher.ingestOnce"

	lg := log.From(ctx)
	started := time.Now()
	defer func() {
		s.metrics.IngestDuration.Observe(time.Since(started).Seconds())
	}()

	byURL := make(map[string][]models.RawRecipe, len(urls))
	var feedsOK, feedsErr int

	for result := range src.FetchMany(ctx, urls) {
		if result.Err != nil {
			feedsErr++
			s.metrics.FeedErrors.WithLabelValues(result.URL).Inc()
			lg.Warn("fetch_error",
				slog.String("op", op),
				slog.String("url", result.URL),
				slog.String("err", result.Err.Error()),
			)
			continue
		}

		feedsOK++
		byURL[result.URL] = result.Items
	}

	var (
		batch                      []models.Recipe
		total, dropped, duplicated int
	)
	seen := make(map[int64]struct{})

	for _, u := range urls {
		items, ok := byURL[u]
		if !ok {
			continue
		}
		// Один URL может встретиться в конфиге дважды.
		delete(byURL, u)

		total += len(items)
		for _, recipe := range catalog.NormalizeRecipes(items) {
			if recipe.ID == 0 {
				dropped++
				continue
			}

			if _, dup := seen[recipe.ID]; dup {
				duplicated++
				continue
			}

			seen[recipe.ID] = struct{}{}
			batch = append(batch, recipe)
		}
	}

	if dropped > 0 {
		s.metrics.RecipesDropped.Add(float64(dropped))
		lg.Warn("ingest_dropped_without_id",
			slog.String("op", op),
			slog.Int("dropped", dropped),
		)
	}

	if len(batch) == 0 {
		lg.Info("ingest_empty",
			slog.String("op", op),
			slog.Int("feeds_ok", feedsOK),
			slog.Int("feeds_err", feedsErr),
		)
		return nil
	}

	if err := s.storage.SaveRecipes(ctx, batch); err != nil {
		return fmt.Errorf("%s: save_recipes: %w", op, err)
	}

	s.metrics.RecipesIngested.Add(float64(len(batch)))

	if err := s.cache.Invalidate(ctx); err != nil {
		lg.Warn("cache_invalidate_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	lg.Info("ingest_saved",
		slog.String("op", op),
		slog.Int("total_items", total),
		slog.Int("saved", len(batch)),
		slog.Int("duplicated", duplicated),
		slog.Int("feeds_ok", feedsOK),
		slog.Int("feeds_err", feedsErr),
	)

	return nil
}
