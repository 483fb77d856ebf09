// Package catalog defines the persisted record model and the reconciliation
// protocol that keeps it honest against the backing store.
//
// A catalog is an insertion-ordered, most-recent-first sequence of records
// for one domain (recordings or files), serialized as a single JSON blob
// under a fixed key. Reconcile validates a loaded catalog record by record:
// entries whose bytes vanished are dropped, entries missing a size pick it
// up from the store, and the caller learns whether a re-save is warranted.
// Mutations (Insert/Remove/Rename) compute a full new catalog in memory so
// the caller can persist it with a single save.
//
// Everything here is pure with respect to persistence; the library package
// owns the save/load cycle.
package catalog
