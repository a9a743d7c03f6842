package compose

import (
	"errors"
	"fmt"
)

// notFoundError indicates that a local compose document could not be found.
type notFoundError struct {
	path  string
	cause error
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("compose document not found: %s", e.path)
}

func (e *notFoundError) Unwrap() error { return e.cause }

// IsNotFoundError checks if an error is a notFoundError.
func IsNotFoundError(err error) bool {
	var nerr *notFoundError
	return errors.As(err, &nerr)
}

// readError indicates that a local compose document exists but could not be read.
type readError struct {
	path  string
	cause error
}

func (e *readError) Error() string {
	return fmt.Sprintf("failed to read compose document %s: %v", e.path, e.cause)
}

func (e *readError) Unwrap() error { return e.cause }

// IsReadError checks if an error is a readError.
func IsReadError(err error) bool {
	var rerr *readError
	return errors.As(err, &rerr)
}

// fetchError indicates a remote fetch failure: timeout, transport failure,
// or a non-success HTTP status.
type fetchError struct {
	url    string
	status int
	cause  error
}

func (e *fetchError) Error() string {
	if e.status != 0 {
		return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.url, e.status)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.url, e.cause)
}

func (e *fetchError) Unwrap() error { return e.cause }

// IsFetchError checks if an error is a fetchError.
func IsFetchError(err error) bool {
	var ferr *fetchError
	return errors.As(err, &ferr)
}

// parseError indicates malformed document syntax. The wrapped YAML error
// carries position information in its message.
type parseError struct {
	cause error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("invalid compose document: %v", e.cause)
}

func (e *parseError) Unwrap() error { return e.cause }

// IsParseError checks if an error is a parseError.
func IsParseError(err error) bool {
	var perr *parseError
	return errors.As(err, &perr)
}

// emptyDocumentError indicates the document has no services to translate.
type emptyDocumentError struct{}

func (e *emptyDocumentError) Error() string {
	return "compose document declares no services"
}

// IsEmptyDocumentError checks if an error is an emptyDocumentError.
func IsEmptyDocumentError(err error) bool {
	var eerr *emptyDocumentError
	return errors.As(err, &eerr)
}
