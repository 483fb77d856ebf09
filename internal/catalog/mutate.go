package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID mints a fresh record identifier. Uniqueness is the only guaranteed
// property; callers must not rely on ordering.
func NewID() string {
	return uuid.NewString()
}

// Insert prepends a record, keeping the catalog most-recent-first.
func Insert[T Record](records []T, rec T) []T {
	out := make([]T, 0, len(records)+1)
	out = append(out, rec)
	return append(out, records...)
}

// ResolveName returns name unchanged when it is unique among records,
// otherwise the first "name (n)" with n >= 1 that is.
func ResolveName[T Record](records []T, name string) string {
	taken := make(map[string]struct{}, len(records))
	for _, rec := range records {
		taken[rec.DisplayName()] = struct{}{}
	}
	if _, exists := taken[name]; !exists {
		return name
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", name, n)
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
	}
}

// Remove drops the record with the given id, returning the removed record
// when one was present. Unknown ids leave the catalog untouched.
func Remove[T Record](records []T, id string) ([]T, T, bool) {
	for i, rec := range records {
		if rec.RecordID() == id {
			out := make([]T, 0, len(records)-1)
			out = append(out, records[:i]...)
			out = append(out, records[i+1:]...)
			return out, rec, true
		}
	}
	var zero T
	return records, zero, false
}

// Rename replaces the display label of the record with the given id,
// preserving its position. The stored path never changes. Returns
// ErrNotFound when the id is absent and rejects blank names.
func Rename[T interface {
	Record
	WithName(string) T
}](records []T, id, newName string) ([]T, T, error) {
	var zero T
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return records, zero, fmt.Errorf("rename %s: name must not be empty", id)
	}
	for i, rec := range records {
		if rec.RecordID() == id {
			renamed := rec.WithName(trimmed)
			out := make([]T, len(records))
			copy(out, records)
			out[i] = renamed
			return out, renamed, nil
		}
	}
	return records, zero, fmt.Errorf("rename %s: %w", id, ErrNotFound)
}

// FindByID returns the record with the given id, if present.
func FindByID[T Record](records []T, id string) (T, bool) {
	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
