// metrics содержит prometheus-коллекторы recipe-service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "recipe_service"

// Metrics — набор бизнес-метрик сервиса.
type Metrics struct {
	// RecipesIngested — рецепты, сохранённые в хранилище после нормализации.
	RecipesIngested prometheus.Counter
	// RecipesDropped — записи источника без идентификатора.
	RecipesDropped prometheus.Counter
	// FeedErrors — ошибки загрузки источников.
	FeedErrors *prometheus.CounterVec
	// IngestDuration — длительность одного прохода загрузки.
	IngestDuration prometheus.Histogram
	// CacheRequests — обращения к кэшу списков с результатом hit/miss/error.
	CacheRequests *prometheus.CounterVec
}

// New создаёт коллекторы и регистрирует их в reg.
// В main передаётся prometheus.DefaultRegisterer, в тестах — отдельный реестр.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RecipesIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_ingested_total",
			Help:      "Total number of recipes saved by the ingest loop.",
		}),
		RecipesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_dropped_total",
			Help:      "Total number of source records dropped for missing id.",
		}),
		FeedErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_errors_total",
			Help:      "Total number of failed source fetches.",
		}, []string{"source"}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Duration of one ingest pass.",
			Buckets:   prometheus.DefBuckets,
		}),
		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_cache_requests_total",
			Help:      "Total number of list cache lookups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.RecipesIngested,
		m.RecipesDropped,
		m.FeedErrors,
		m.IngestDuration,
		m.CacheRequests,
	)

	return m
}

// Значения метки result для CacheRequests.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
