package library

import (
	"errors"
	"fmt"
)

// ErrFileMissing indicates a cataloged record whose bytes are gone from the
// vault.
var ErrFileMissing = errors.New("backing file missing")

// MissingFileError reports a record dropped because its bytes disappeared.
// It unwraps to ErrFileMissing.
type MissingFileError struct {
	ID   string
	Name string
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%q (%s): %v", e.Name, e.Path, ErrFileMissing)
}

func (e *MissingFileError) Unwrap() error { return ErrFileMissing }
