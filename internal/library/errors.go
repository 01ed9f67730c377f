// Package library loads and serves the static idea library.
package library

import (
	"errors"
	"fmt"
)

// ErrEmptyLibrary indicates the library document contains no candidates.
// Ranking against an empty library fails fast with this error rather than
// producing an undefined winner.
var ErrEmptyLibrary = errors.New("idea library contains no candidates")

// DuplicateIDError indicates two candidates share the same id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate candidate id: %s", e.ID)
}
