// Package generate renders the output artifacts of a conversion: the
// generator source text, the template metadata document and the review
// notes.
package generate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tplforge/tplforge/internal/classify"
	"github.com/tplforge/tplforge/internal/compose"
	"github.com/tplforge/tplforge/internal/interp"
	"github.com/tplforge/tplforge/internal/schema"
)

// domainHost is the placeholder the platform substitutes with the primary
// domain assigned to the project.
const domainHost = "$(PRIMARY_DOMAIN)"

// Generator renders the generator source text for a classified document as
// a single well-formed unit: secret declarations, then database services,
// then applications, then the remaining services. Output is deterministic —
// every iteration follows document order or the ordered analysis sets.
func Generator(doc *compose.Document, analysis classify.Analysis, secrets *interp.Secrets) string {
	rewriter := interp.NewRewriter(doc)

	var b strings.Builder
	writeImports(&b, len(analysis.Databases) > 0)

	b.WriteString("export function generate(input: Input): Output {\n")
	b.WriteString("  const services: Services = [];\n")

	for _, name := range analysis.Databases {
		if v, ok := secrets.Var(name); ok {
			fmt.Fprintf(&b, "\n  const %s = randomPassword();\n", v)
		}
	}

	for _, name := range analysis.Databases {
		svc, ok := doc.FindService(name)
		if !ok {
			continue
		}
		writeDatabase(&b, svc, secrets)
	}

	for _, name := range analysis.Applications {
		svc, ok := doc.FindService(name)
		if !ok {
			continue
		}
		writeService(&b, svc, rewriter)
	}

	for _, name := range analysis.Others {
		svc, ok := doc.FindService(name)
		if !ok {
			continue
		}
		writeService(&b, svc, rewriter)
	}

	b.WriteString("\n  return { services };\n")
	b.WriteString("}\n")
	return b.String()
}

func writeImports(b *strings.Builder, withPasswords bool) {
	if withPasswords {
		b.WriteString("import { Output, randomPassword, Services } from \"~templates-utils\";\n")
	} else {
		b.WriteString("import { Output, Services } from \"~templates-utils\";\n")
	}
	b.WriteString("import { Input } from \"./meta\";\n\n")
}

func writeDatabase(b *strings.Builder, svc compose.Service, secrets *interp.Secrets) {
	engine := classify.Engine(svc.Name, svc.Spec)

	b.WriteString("\n  services.push({\n")
	fmt.Fprintf(b, "    type: %s,\n", jsString(engine))
	b.WriteString("    data: {\n")
	b.WriteString("      projectName: input.projectName,\n")
	fmt.Fprintf(b, "      serviceName: input.%s,\n", schema.ServiceNameField(svc.Name))
	if v, ok := secrets.Var(svc.Name); ok {
		fmt.Fprintf(b, "      password: %s,\n", v)
	}
	b.WriteString("    },\n")
	b.WriteString("  });\n")
}

func writeService(b *strings.Builder, svc compose.Service, rewriter *interp.Rewriter) {
	b.WriteString("\n  services.push({\n")
	b.WriteString("    type: \"app\",\n")
	b.WriteString("    data: {\n")
	b.WriteString("      projectName: input.projectName,\n")
	fmt.Fprintf(b, "      serviceName: input.%s,\n", schema.ServiceNameField(svc.Name))

	switch {
	case svc.Spec.Image != "":
		fmt.Fprintf(b, "      source: { type: \"image\", image: input.%s },\n", schema.ServiceImageField(svc.Name))
	case svc.Spec.Build != nil:
		fmt.Fprintf(b, "      // REVIEW: build context %s requires a published image\n", jsString(svc.Spec.Build.Context))
	}

	writeEnv(b, svc, rewriter)
	writeMounts(b, svc)
	writeDomains(b, svc)

	if svc.Spec.Command.IsSet() {
		fmt.Fprintf(b, "      deploy: { command: %s },\n", jsString(svc.Spec.Command.String()))
	}

	b.WriteString("    },\n")
	b.WriteString("  });\n")
}

// writeEnv emits one template-literal line per normalized environment
// entry, with cross-service references rewritten symbolically.
func writeEnv(b *strings.Builder, svc compose.Service, rewriter *interp.Rewriter) {
	env := compose.NormalizeEnvironment(svc.Spec.Environment)
	if len(env) == 0 {
		return
	}

	b.WriteString("      env: [\n")
	for _, entry := range env {
		fmt.Fprintf(b, "        `%s=%s`,\n", interp.Escape(entry.Key), rewriter.Rewrite(entry.Value))
	}
	b.WriteString("      ].join(\"\\n\"),\n")
}

// writeMounts emits named volumes as structured mount entries; bind mounts
// and unrecognized tokens become explicit manual-review markers instead of
// guessed configuration.
func writeMounts(b *strings.Builder, svc compose.Service) {
	if len(svc.Spec.Volumes) == 0 {
		return
	}

	b.WriteString("      mounts: [\n")
	for _, token := range svc.Spec.Volumes {
		var binding compose.VolumeBinding
		ok := false
		if token.Scalar {
			binding, ok = compose.ParseVolume(token.Text)
		}
		switch {
		case !ok:
			fmt.Fprintf(b, "        // REVIEW: unrecognized volume token %s\n", jsString(token.Text))
		case binding.Mechanism == compose.MountBind:
			fmt.Fprintf(b, "        // REVIEW: bind mount %s must be configured manually\n", jsString(token.Text))
		default:
			fmt.Fprintf(b, "        { type: \"volume\", name: %s, mountPath: %s },\n",
				jsString(binding.Source), jsString(binding.ContainerPath))
		}
	}
	b.WriteString("      ],\n")
}

// writeDomains emits a reachability entry when the service declares at
// least one parseable port binding. Only the first binding's container port
// is used; later bindings are left to the review notes.
func writeDomains(b *strings.Builder, svc compose.Service) {
	binding, ok := compose.FirstPortBinding(svc.Spec)
	if !ok {
		return
	}
	fmt.Fprintf(b, "      domains: [{ host: %s, port: %d }],\n", jsString(domainHost), binding.Container)
}

// jsString renders s as a double-quoted string literal. Go quoting rules
// are a safe subset of JS string syntax.
func jsString(s string) string {
	return strconv.Quote(s)
}
