// Package vault is the backing store for record bytes.
//
// The accessor wraps the device filesystem behind the stat/write/copy/delete
// surface the catalog protocol consumes. Copies verify size and SHA256 so a
// record is never cataloged over corrupt bytes.
package vault
