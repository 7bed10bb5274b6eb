package appointment

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("appointment not found")
	// ErrLoadFailed is returned when a seed set cannot replace the collection.
	ErrLoadFailed = errors.New("load appointments failed")
	// ErrDuplicateID means the id generator produced an id that is already
	// live. It signals a bug, not bad input.
	ErrDuplicateID = errors.New("duplicate appointment id")
)

// ValidationError lists the fields that were missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid appointment fields: " + strings.Join(e.Fields, ", ")
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
