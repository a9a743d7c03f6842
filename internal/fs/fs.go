// Package fs provides file system operations for generated template artifacts.
package fs

import (
	"crypto/sha1" //nolint:gosec // Content tracking only, not security.
	"os"
	"path/filepath"

	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/log"
)

// Service provides artifact file operations rooted at the configured
// templates directory.
type Service struct {
	configProvider config.Provider
	logger         log.Logger
}

// NewService creates a filesystem service with the given config provider.
func NewService(configProvider config.Provider, logger log.Logger) *Service {
	return &Service{
		configProvider: configProvider,
		logger:         logger,
	}
}

// TemplateDir returns the destination directory for a template slug.
func (s *Service) TemplateDir(slug string) string {
	return filepath.Join(s.configProvider.GetConfig().TemplatesDir, slug)
}

// Exists reports whether anything already occupies the destination for slug.
func (s *Service) Exists(slug string) bool {
	_, err := os.Stat(s.TemplateDir(slug))
	return err == nil
}

// WriteArtifact writes one artifact under the template directory, creating
// parent directories as needed. name may contain subdirectories.
func (s *Service) WriteArtifact(slug, name string, data []byte) error {
	path := filepath.Join(s.TemplateDir(slug), name)
	s.logger.Debug("Writing artifact", "path", path)

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644) //nolint:gosec // Artifacts are meant to be shared.
}

// ContentHash calculates a SHA1 hash for content tracking in the state store.
func ContentHash(content string) []byte {
	hash := sha1.New() //nolint:gosec // Content tracking only, not security.
	hash.Write([]byte(content))
	return hash.Sum(nil)
}
