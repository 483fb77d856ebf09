package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the subsequence of records whose search text contains the
// query, case-insensitively. A blank query returns the input untouched, in
// order. The result is derived on every call and never cached; catalogs stay
// small enough that a linear scan wins over any index.
func Filter[T Record](records []T, query string) []T {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return records
	}

	fold := cases.Fold()
	needle := fold.String(trimmed)

	out := make([]T, 0, len(records))
	for _, rec := range records {
		for _, text := range rec.SearchText() {
			if strings.Contains(fold.String(text), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
