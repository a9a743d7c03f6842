// Package git resolves compose documents out of remote git repositories.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/tplforge/tplforge/internal/log"
)

// composeFileNames are the well-known compose file names, checked in order
// at the repository root.
var composeFileNames = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

// ComposeFileFromRepo shallow-clones the repository at url into a temporary
// directory, reads the first well-known compose file at its root and
// returns its text. The clone is removed before returning.
func ComposeFileFromRepo(ctx context.Context, url string, logger log.Logger) (string, error) {
	dir, err := os.MkdirTemp("", "tplforge-clone-*")
	if err != nil {
		return "", fmt.Errorf("failed to create clone directory: %w", err)
	}
	defer os.RemoveAll(dir)

	logger.Debug("Cloning repository", "url", url, "dir", dir)

	_, err = gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to clone %s: %w", url, err)
	}

	for _, name := range composeFileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			logger.Debug("Found compose document in repository", "file", name)
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	return "", fmt.Errorf("no compose document found at the root of %s", url)
}
