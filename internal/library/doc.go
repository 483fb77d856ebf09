// Package library orchestrates the vault: catalog blobs in the key-value
// store, record bytes on the filesystem, and the process lock that keeps
// access single-writer.
//
// Each catalog has its own handle (Recordings, Files). Listing always
// reconciles the catalog against the vault first, so records whose bytes
// vanished never reach the caller; opening a record performs the same check
// lazily and drops the record when its bytes are gone.
package library
