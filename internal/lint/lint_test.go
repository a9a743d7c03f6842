package lint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplforge/tplforge/internal/compose"
	"github.com/tplforge/tplforge/internal/testutil"
)

func TestDocumentCleanCompose(t *testing.T) {
	doc, err := compose.Parse(`
services:
  web:
    image: nginx:alpine
`)
	require.NoError(t, err)

	warnings := Document(context.Background(), doc, testutil.NewTestLogger(t))
	assert.Empty(t, warnings)
}

func TestDocumentInvalidImageReference(t *testing.T) {
	doc, err := compose.Parse(`
services:
  web:
    image: "NGINX IS NOT AN IMAGE REF"
`)
	require.NoError(t, err)

	warnings := Document(context.Background(), doc, testutil.NewTestLogger(t))
	require.NotEmpty(t, warnings)

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "image reference") && strings.Contains(w, "is not valid") {
			found = true
		}
	}
	assert.True(t, found, "expected an image reference warning, got %v", warnings)
}
