package catalog

import "errors"

// ErrNotFound reports a mutation against an id absent from the catalog.
var ErrNotFound = errors.New("record not found")
