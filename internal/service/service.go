// service содержит бизнес-логику recipe-service.
package service

import (
	"errors"

	"github.com/pribylovaa/go-recipe-catalog/internal/cache"
	"github.com/pribylovaa/go-recipe-catalog/internal/config"
	"github.com/pribylovaa/go-recipe-catalog/internal/metrics"
	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: codes.NotFound / 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: codes.InvalidArgument / 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: codes.InvalidArgument / 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated — операция требует идентифицированного пользователя.
	// Транспорт: codes.Unauthenticated / 401.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Service — описывает бизнес-логику recipe-service.
type Service struct {
	storage storage.Storage
	cache   cache.ListCache
	metrics *metrics.Metrics
	cfg     config.Config
}

// New создает новый экземпляр Service.
// nil-кэш заменяется на cache.Noop, nil-метрики — на коллекторы в отдельном реестре.
func New(storage storage.Storage, listCache cache.ListCache, m *metrics.Metrics, cfg config.Config) *Service {
	if listCache == nil {
		listCache = cache.Noop{}
	}

	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}

	return &Service{
		storage: storage,
		cache:   listCache,
		metrics: m,
		cfg:     cfg,
	}
}
