package fs

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplforge/tplforge/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.NewTestConfig(t), testutil.NewTestLogger(t))
}

func TestTemplateDir(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	svc := NewService(cfg, testutil.NewTestLogger(t))
	assert.Equal(t, filepath.Join(cfg.GetConfig().TemplatesDir, "my-app"), svc.TemplateDir("my-app"))
}

func TestWriteArtifactAndExists(t *testing.T) {
	svc := newTestService(t)

	assert.False(t, svc.Exists("my-app"))

	require.NoError(t, svc.WriteArtifact("my-app", "template.yml", []byte("name: My App\n")))
	require.NoError(t, svc.WriteArtifact("my-app", filepath.Join("assets", "logo.png"), nil))

	assert.True(t, svc.Exists("my-app"))

	data, err := os.ReadFile(filepath.Join(svc.TemplateDir("my-app"), "template.yml"))
	require.NoError(t, err)
	assert.Equal(t, "name: My App\n", string(data))

	info, err := os.Stat(filepath.Join(svc.TemplateDir("my-app"), "assets", "logo.png"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestContentHash(t *testing.T) {
	// SHA1 of "hello".
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", hex.EncodeToString(ContentHash("hello")))
	assert.Equal(t, ContentHash("same"), ContentHash("same"))
	assert.NotEqual(t, ContentHash("same"), ContentHash("different"))
}
