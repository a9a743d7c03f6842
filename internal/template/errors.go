package template

import (
	"errors"
	"fmt"
)

// invalidSlugError indicates the destination slug is not of the form
// ^[a-z0-9-]+$.
type invalidSlugError struct {
	slug string
}

func (e *invalidSlugError) Error() string {
	return fmt.Sprintf("invalid template slug %q: must match ^[a-z0-9-]+$", e.slug)
}

// IsInvalidSlugError checks if an error is an invalidSlugError.
func IsInvalidSlugError(err error) bool {
	var serr *invalidSlugError
	return errors.As(err, &serr)
}

// alreadyExistsError indicates the destination is already occupied. It is
// raised before any I/O that would overwrite data.
type alreadyExistsError struct {
	dir string
}

func (e *alreadyExistsError) Error() string {
	return fmt.Sprintf("template destination already exists: %s", e.dir)
}

// IsAlreadyExistsError checks if an error is an alreadyExistsError.
func IsAlreadyExistsError(err error) bool {
	var aerr *alreadyExistsError
	return errors.As(err, &aerr)
}
