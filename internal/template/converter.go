// Package template orchestrates a conversion end to end: load a compose
// document, classify its services, synthesize the input schema and write
// the generated template artifacts.
package template

import (
	"context"
	"regexp"

	"github.com/tplforge/tplforge/internal/classify"
	"github.com/tplforge/tplforge/internal/compose"
	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/dependency"
	"github.com/tplforge/tplforge/internal/fs"
	"github.com/tplforge/tplforge/internal/generate"
	"github.com/tplforge/tplforge/internal/interp"
	"github.com/tplforge/tplforge/internal/lint"
	"github.com/tplforge/tplforge/internal/log"
	"github.com/tplforge/tplforge/internal/schema"
	"github.com/tplforge/tplforge/internal/state"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Artifact file names inside a template directory.
const (
	MetaFile       = "template.yml"
	GeneratorFile  = "index.ts"
	NotesFile      = "NOTES.md"
	LogoFile       = "assets/logo.png"
	ScreenshotFile = "assets/screenshot.png"
)

// Result describes a completed conversion.
type Result struct {
	Dir      string
	Analysis classify.Analysis
	Schema   *schema.Schema
	Document *compose.Document
}

// Converter runs one-shot compose-to-template conversions. It holds no
// per-run state; a single Converter is safe to reuse for different slugs,
// while concurrent runs against the same slug must be serialized by the
// caller — the pre-existence check and the writes are not transactional.
type Converter struct {
	configProvider config.Provider
	logger         log.Logger
	files          *fs.Service
	loader         *compose.Loader
	store          *state.Store
}

// NewConverter creates a Converter. store may be nil; conversion history is
// then not recorded.
func NewConverter(configProvider config.Provider, logger log.Logger, store *state.Store) *Converter {
	cfg := configProvider.GetConfig()
	return &Converter{
		configProvider: configProvider,
		logger:         logger,
		files:          fs.NewService(configProvider, logger),
		loader:         compose.NewLoader(cfg.FetchTimeout, logger),
		store:          store,
	}
}

// Convert translates the compose document at source into a template under
// the destination slug. It either writes all artifacts or fails before
// writing any; a crash mid-write can leave partial output on disk.
func (c *Converter) Convert(ctx context.Context, source, slug string) (*Result, error) {
	if !slugPattern.MatchString(slug) {
		return nil, &invalidSlugError{slug: slug}
	}

	if c.files.Exists(slug) {
		return nil, &alreadyExistsError{dir: c.files.TemplateDir(slug)}
	}

	doc, err := c.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	analysis := classify.Partition(doc)
	c.logger.Info("Classified services",
		"databases", len(analysis.Databases),
		"applications", len(analysis.Applications),
		"other", len(analysis.Others))

	var warnings []string
	warnings = append(warnings, lint.Document(ctx, doc, c.logger)...)
	warnings = append(warnings, dependency.Check(doc)...)

	secrets := interp.NewSecrets(analysis.Databases)
	inputSchema := schema.Synthesize(doc, analysis)

	meta, err := generate.Meta(slug, inputSchema)
	if err != nil {
		return nil, err
	}
	generator := generate.Generator(doc, analysis, secrets)
	notes := generate.Notes(doc, analysis, warnings)

	artifacts := []struct {
		name string
		data []byte
	}{
		{MetaFile, meta},
		{GeneratorFile, []byte(generator)},
		{NotesFile, []byte(notes)},
		{LogoFile, nil},
		{ScreenshotFile, nil},
	}
	for _, a := range artifacts {
		if err := c.files.WriteArtifact(slug, a.name, a.data); err != nil {
			return nil, err
		}
	}

	c.record(slug, source, generator)

	return &Result{
		Dir:      c.files.TemplateDir(slug),
		Analysis: analysis,
		Schema:   inputSchema,
		Document: doc,
	}, nil
}

// record stores the conversion in the history database. History is
// best-effort; a failure never invalidates artifacts already on disk.
func (c *Converter) record(slug, source, generator string) {
	if c.store == nil {
		return
	}
	err := c.store.Create(&state.Conversion{
		Slug:        slug,
		Source:      source,
		ContentHash: fs.ContentHash(generator),
	})
	if err != nil {
		c.logger.Warn("Failed to record conversion history", "slug", slug, "error", err)
	}
}
