package catalog

import (
	"slices"
	"strings"
	"time"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
)

// createdAtLayouts — форматы CreatedAt, которые встречаются у источников.
// Порядок важен: первым подходящим считается первый успешно разобранный.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"02.01.2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseCreatedAt разбирает дату создания рецепта в UTC.
// Возвращает ok=false для пустой или неразборчивой строки, а также для
// RFC 1123 с буквенной зоной, отличной от UTC и GMT.
func ParseCreatedAt(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range createdAtLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}

		// Буквенная зона кроме UTC/GMT не задаёт смещение однозначно:
		// time.Parse подставил бы нулевое или локальное смещение.
		if layout == time.RFC1123 {
			if name, _ := t.Zone(); name != "UTC" && name != "GMT" {
				return time.Time{}, false
			}
		}

		return t.UTC(), true
	}

	return time.Time{}, false
}

// Select возвращает новый срез рецептов, упорядоченный по критерию c.
//
// Семантика:
//   - FilterAll — исходный порядок;
//   - FilterNewest / FilterOldest — по хронологическому значению CreatedAt
//     (убывание / возрастание); записи без разборчивой даты идут последними;
//   - FilterPopularity — по убыванию StarRate.
//
// Сортировка стабильна: при равенстве ключей сохраняется исходный порядок.
// Входной срез не изменяется; неизвестный критерий ведёт себя как FilterAll.
func Select(recipes []models.Recipe, c models.FilterCriterion) []models.Recipe {
	out := make([]models.Recipe, len(recipes))
	copy(out, recipes)

	switch c {
	case models.FilterNewest:
		sortByCreatedAt(out, true)
	case models.FilterOldest:
		sortByCreatedAt(out, false)
	case models.FilterPopularity:
		slices.SortStableFunc(out, func(a, b models.Recipe) int {
			switch {
			case a.StarRate > b.StarRate:
				return -1
			case a.StarRate < b.StarRate:
				return 1
			default:
				return 0
			}
		})
	}

	return out
}

// sortByCreatedAt стабильно сортирует рецепты по дате создания.
// Даты разбираются один раз, до сортировки.
func sortByCreatedAt(recipes []models.Recipe, desc bool) {
	type keyed struct {
		recipe models.Recipe
		at     time.Time
		ok     bool
	}

	items := make([]keyed, len(recipes))
	for i, r := range recipes {
		at, ok := ParseCreatedAt(r.CreatedAt)
		items[i] = keyed{recipe: r, at: at, ok: ok}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}

		cmp := a.at.Compare(b.at)
		if desc {
			return -cmp
		}

		return cmp
	})

	for i := range items {
		recipes[i] = items[i].recipe
	}
}
