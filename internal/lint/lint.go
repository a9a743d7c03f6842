// Package lint runs non-fatal conformance checks over a compose document
// before translation. Findings are appended to the review notes; they never
// block a conversion.
package lint

import (
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"github.com/distribution/reference"

	"github.com/tplforge/tplforge/internal/compose"
	"github.com/tplforge/tplforge/internal/log"
)

// Document lints a parsed compose document and returns review warnings.
func Document(ctx context.Context, doc *compose.Document, logger log.Logger) []string {
	var warnings []string

	if err := specConformance(ctx, doc.Source); err != nil {
		logger.Debug("Document failed compose-spec validation", "error", err)
		warnings = append(warnings, fmt.Sprintf("document does not fully conform to the compose specification: %v", err))
	}

	for _, svc := range doc.Services {
		if svc.Spec.Image == "" {
			continue
		}
		if _, err := reference.ParseNormalizedNamed(svc.Spec.Image); err != nil {
			warnings = append(warnings, fmt.Sprintf("service %q: image reference %q is not valid: %v", svc.Name, svc.Spec.Image, err))
		}
	}

	return warnings
}

// specConformance parses the document with the compose-spec loader, with
// full validation on, purely to surface conformance findings.
func specConformance(ctx context.Context, text string) error {
	details := types.ConfigDetails{
		ConfigFiles: []types.ConfigFile{
			{Filename: "compose.yaml", Content: []byte(text)},
		},
		Environment: types.Mapping{},
	}

	_, err := loader.LoadWithContext(ctx, details, func(o *loader.Options) {
		o.SetProjectName("lint", false)
	})
	return err
}
