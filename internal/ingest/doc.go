// Package ingest turns source files into import candidates.
//
// A candidate carries the staging path, a suggested display name, a MIME
// classification, and a size hint. Audio files are probed for embedded tag
// metadata so a tagged clip imports under its real title instead of its
// file name.
package ingest
