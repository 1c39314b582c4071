package models

import (
	"errors"
	"strings"
)

// ErrUnknownCriterion — строка не соответствует ни одному критерию.
var ErrUnknownCriterion = errors.New("unknown filter criterion")

// FilterCriterion — закрытое перечисление критериев упорядочивания каталога.
// Нулевое значение — FilterAll.
type FilterCriterion int

const (
	// FilterAll — исходный порядок.
	FilterAll FilterCriterion = iota
	// FilterNewest — сначала новые (по CreatedAt).
	FilterNewest
	// FilterOldest — сначала старые.
	FilterOldest
	// FilterPopularity — по убыванию StarRate.
	FilterPopularity
)

var criterionLabels = [...]string{
	FilterAll:        "All",
	FilterNewest:     "Newest",
	FilterOldest:     "Oldest",
	FilterPopularity: "Popularity",
}

// FilterCriteria возвращает все критерии в порядке объявления.
func FilterCriteria() []FilterCriterion {
	return []FilterCriterion{FilterAll, FilterNewest, FilterOldest, FilterPopularity}
}

// Valid сообщает, входит ли значение в перечисление.
func (c FilterCriterion) Valid() bool {
	return c >= FilterAll && int(c) < len(criterionLabels)
}

// Label возвращает отображаемое имя критерия; для неизвестных значений — "".
func (c FilterCriterion) Label() string {
	if !c.Valid() {
		return ""
	}

	return criterionLabels[c]
}

// Key возвращает машиночитаемый идентификатор критерия ("all", "newest", ...).
func (c FilterCriterion) Key() string {
	return strings.ToLower(c.Label())
}

func (c FilterCriterion) String() string {
	return c.Label()
}

// ParseFilterCriterion разбирает критерий по его метке без учёта регистра.
// Пустая строка трактуется как FilterAll.
func ParseFilterCriterion(s string) (FilterCriterion, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterAll, nil
	}

	for _, c := range FilterCriteria() {
		if strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}

	return FilterAll, ErrUnknownCriterion
}
