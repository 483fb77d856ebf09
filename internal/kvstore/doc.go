// Package kvstore persists catalog blobs in SQLite.
//
// The store is a plain key-value table: one serialized catalog per fixed
// key, replaced wholesale on every save. Writes go through a single upsert
// so a save is atomic from the application's perspective. The store never
// parses catalog contents; decoding and validation belong to the catalog
// package.
package kvstore
