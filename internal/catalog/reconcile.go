package catalog

import "context"

// Info describes a backing-store entry.
type Info struct {
	Exists    bool
	Size      int64
	SizeKnown bool
}

// Stater is the slice of the backing store the reconciler needs.
type Stater interface {
	Stat(ctx context.Context, path string) (Info, error)
}

// Reconcile validates records against the backing store, one at a time and in
// order. Records whose bytes are gone are dropped; a stat error counts as
// gone for that record only. Records with no known size pick it up from the
// store. The returned flag is true when the result differs from the input;
// callers must persist the clean catalog when it is set and adopt the clean
// catalog as their in-memory state either way.
//
// Reconcile itself never fails: a nil input yields an empty catalog.
func Reconcile[T interface {
	Record
	WithSize(int64) T
}](ctx context.Context, store Stater, records []T) ([]T, bool) {
	clean := make([]T, 0, len(records))
	changed := false
	for _, rec := range records {
		info, err := store.Stat(ctx, rec.StoragePath())
		if err != nil || !info.Exists {
			changed = true
			continue
		}
		if _, known := rec.SizeBytes(); !known && info.SizeKnown {
			rec = rec.WithSize(info.Size)
			changed = true
		}
		clean = append(clean, rec)
	}
	return clean, changed
}
