package catalog

import "strings"

// CategoryAll is the sentinel category that passes every item.
const CategoryAll = "all"

// Searchable is any entity the filter pipeline can narrow: it exposes
// the strings the text step matches against and the key the category
// step compares.
type Searchable interface {
	SearchFields() []string
	CategoryKey() string
}

// Filter applies the two-step pipeline: first the text predicate, then
// the category predicate over the survivors. The order is fixed; the
// category step only engages while a non-empty query keeps filtering
// active, mirroring the search screen where category chips are inert
// until a term is typed. Matching is plain case-insensitive substring,
// no diacritic folding.
func Filter[T Searchable](items []T, query, category string) []T {
	query = strings.TrimSpace(query)

	matched := items
	if query != "" {
		needle := strings.ToLower(query)
		matched = make([]T, 0, len(items))
		for _, item := range items {
			if matchesAny(item.SearchFields(), needle) {
				matched = append(matched, item)
			}
		}
	}

	if query == "" || category == "" || category == CategoryAll {
		return matched
	}

	out := make([]T, 0, len(matched))
	for _, item := range matched {
		if item.CategoryKey() == category {
			out = append(out, item)
		}
	}
	return out
}

func matchesAny(fields []string, needle string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
