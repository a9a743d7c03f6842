package compose

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	notFound := &notFoundError{path: "/tmp/missing.yml"}
	read := &readError{path: "/tmp/dir", cause: errors.New("is a directory")}
	fetch := &fetchError{url: "https://example.com/x.yml", status: 503}
	parse := &parseError{cause: errors.New("yaml: line 3")}
	empty := &emptyDocumentError{}

	assert.True(t, IsNotFoundError(notFound))
	assert.True(t, IsReadError(read))
	assert.True(t, IsFetchError(fetch))
	assert.True(t, IsParseError(parse))
	assert.True(t, IsEmptyDocumentError(empty))

	// Predicates see through wrapping.
	assert.True(t, IsFetchError(fmt.Errorf("loading source: %w", fetch)))

	// Each predicate matches only its own kind.
	assert.False(t, IsNotFoundError(read))
	assert.False(t, IsFetchError(parse))
	assert.False(t, IsParseError(empty))
	assert.False(t, IsEmptyDocumentError(nil))
}

func TestFetchErrorMessages(t *testing.T) {
	withStatus := &fetchError{url: "https://example.com/x.yml", status: 404}
	assert.Contains(t, withStatus.Error(), "unexpected status 404")

	withCause := &fetchError{url: "https://example.com/x.yml", cause: errors.New("timeout")}
	assert.Contains(t, withCause.Error(), "timeout")
}
