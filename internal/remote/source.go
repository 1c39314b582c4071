// remote - реализует service.Source для HTTP JSON-источников рецептов.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/service"
	"github.com/pribylovaa/go-recipe-catalog/pkg/log"
)

const (
	defaultTimeout       = 15 * time.Second
	defaultMaxConcurrent = 6
	// maxBodySize — верхняя граница размера ленты.
	maxBodySize = 16 << 20
)

// Source реализует service.Source для JSON-лент.
// Лента — либо объект {"recipes":[...]}, либо массив рецептов верхнего уровня.
//
// Параллелизм ограничен семафором maxConc. HTTP-клиент настраивается извне
// (таймауты, прокси и т.д.).
type Source struct {
	client  *http.Client
	maxConc int
}

var _ service.Source = (*Source)(nil)

// envelope — обёртка ленты с полем recipes.
type envelope struct {
	Recipes []models.RawRecipe `json:"recipes"`
}

// New создаёт новый источник.
func New(client *http.Client, maxConcurrent int) *Source {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}

	return &Source{client: client, maxConc: maxConcurrent}
}

// FetchMany загружает несколько лент конкурентно и отдаёт результаты в канал.
// Канал закрывается после обработки всех URL. При отмене ctx новые загрузки
// не запускаются, а неотправленные результаты отбрасываются.
func (s *Source) FetchMany(ctx context.Context, urls []string) <-chan service.FetchResult {
	output := make(chan service.FetchResult)

	go func() {
		defer close(output)

		var wg sync.WaitGroup
		defer wg.Wait()

		sem := make(chan struct{}, s.maxConc)

		for _, u := range urls {
			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}

			wg.Add(1)
			go func(url string) {
				defer wg.Done()
				defer func() { <-sem }()

				items, err := s.fetchOne(ctx, url)

				select {
				case output <- service.FetchResult{URL: url, Items: items, Err: err}:
				case <-ctx.Done():
				}
			}(u)
		}
	}()

	return output
}

// fetchOne загружает и декодирует ленту по URL.
func (s *Source) fetchOne(ctx context.Context, src string) ([]models.RawRecipe, error) {
	const op = "remote.fetchOne"

	lg := log.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("url", src),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", op, err)
	}

	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%s: body exceeds %d bytes", op, maxBodySize)
	}

	items, err := decodeFeed(body)
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	lg.Debug("feed_fetched",
		slog.String("op", op),
		slog.String("url", src),
		slog.Int("items", len(items)),
	)

	return items, nil
}

// decodeFeed разбирает ленту в одном из двух форматов.
// Отсутствующее поле recipes трактуется как пустая лента.
func decodeFeed(body []byte) ([]models.RawRecipe, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	if trimmed[0] == '[' {
		var items []models.RawRecipe
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}

		return items, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}

	return env.Recipes, nil
}
