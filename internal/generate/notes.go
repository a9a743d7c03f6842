package generate

import (
	"fmt"
	"strings"

	"github.com/tplforge/tplforge/internal/classify"
	"github.com/tplforge/tplforge/internal/compose"
)

// reviewCategories is the fixed checklist every generated template carries.
var reviewCategories = []string{
	"Environment variables: confirm every value, especially credentials and connection strings.",
	"Volumes and bind mounts: named volumes were translated, bind mounts were not — configure them manually.",
	"Build contexts: services built from source need a published image before the template works.",
	"Networks: compose networks are not modeled; verify services can still reach each other.",
	"Dependency order: depends_on is not enforced by the generated topology; adjust startup expectations.",
	"Secrets: one generated password per database service; rotate anything that was hardcoded.",
	"Ports: only the first port binding per service was translated; review the rest.",
}

// excerptLimit bounds the original-document excerpt appended for traceability.
const excerptLimit = 2000

// Notes renders the human review checklist: services per class, the fixed
// manual-review categories, warnings collected during translation, and a
// truncated excerpt of the original document. Purely informational.
func Notes(doc *compose.Document, analysis classify.Analysis, extra []string) string {
	var b strings.Builder

	b.WriteString("# Review notes\n\n")
	b.WriteString("This template was scaffolded from a compose document. It is a best-effort\n")
	b.WriteString("starting point, not a validated configuration — walk the checklist below\n")
	b.WriteString("before publishing.\n\n")

	b.WriteString("## Services\n\n")
	writeServiceGroup(&b, "Databases", analysis.Databases)
	writeServiceGroup(&b, "Applications", analysis.Applications)
	writeServiceGroup(&b, "Other", analysis.Others)

	b.WriteString("## Manual review checklist\n\n")
	for _, item := range reviewCategories {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}
	b.WriteString("\n")

	warnings := append(irregularities(doc), extra...)
	if len(warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Original document (excerpt)\n\n")
	b.WriteString("```yaml\n")
	b.WriteString(excerpt(doc.Source))
	b.WriteString("```\n")

	return b.String()
}

func writeServiceGroup(b *strings.Builder, label string, names []string) {
	fmt.Fprintf(b, "### %s\n\n", label)
	if len(names) == 0 {
		b.WriteString("_none_\n\n")
		return
	}
	for _, name := range names {
		fmt.Fprintf(b, "- %s\n", name)
	}
	b.WriteString("\n")
}

// irregularities recomputes the normalizer findings that degraded into
// best-effort output: malformed env tokens, unrecognized volume tokens and
// skipped port tokens.
func irregularities(doc *compose.Document) []string {
	var out []string
	for _, svc := range doc.Services {
		for _, token := range compose.MalformedEnvTokens(svc.Spec.Environment) {
			out = append(out, fmt.Sprintf("service %q: environment token %q has no '='; treated as empty value", svc.Name, token))
		}
		for _, token := range svc.Spec.Volumes {
			if _, ok := compose.ParseVolume(token.Text); !token.Scalar || !ok {
				out = append(out, fmt.Sprintf("service %q: unrecognized volume token %q left for manual handling", svc.Name, token.Text))
			}
		}
		for _, token := range svc.Spec.Ports {
			if _, ok := compose.ParsePort(token.Text); !token.Scalar || !ok {
				out = append(out, fmt.Sprintf("service %q: port token %q not translated", svc.Name, token.Text))
			}
		}
		if len(svc.Spec.Ports) > 1 {
			out = append(out, fmt.Sprintf("service %q: only the first of %d port bindings was translated", svc.Name, len(svc.Spec.Ports)))
		}
	}
	if doc.HasNetworks {
		out = append(out, "top-level networks block present but not modeled")
	}
	return out
}

func excerpt(source string) string {
	if len(source) <= excerptLimit {
		if !strings.HasSuffix(source, "\n") {
			source += "\n"
		}
		return source
	}
	return source[:excerptLimit] + "\n# ... truncated ...\n"
}
