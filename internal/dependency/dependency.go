// Package dependency inspects the depends_on relationships of a compose
// document. The generated topology carries no start-order semantics, so the
// graph is only used to surface problems in the review notes.
package dependency

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/tplforge/tplforge/internal/compose"
)

// Check builds the depends_on graph and returns review warnings: references
// to undeclared services, self-dependencies and cycles. It never fails the
// conversion.
func Check(doc *compose.Document) []string {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	declared := make(map[string]bool, len(doc.Services))
	for _, svc := range doc.Services {
		declared[svc.Name] = true
		_ = g.AddVertex(svc.Name)
	}

	var warnings []string
	for _, svc := range doc.Services {
		for _, dep := range svc.Spec.DependsOn {
			switch {
			case !declared[dep]:
				warnings = append(warnings, fmt.Sprintf("service %q depends on undeclared service %q", svc.Name, dep))
			case dep == svc.Name:
				warnings = append(warnings, fmt.Sprintf("service %q depends on itself", svc.Name))
			default:
				if err := g.AddEdge(dep, svc.Name); err != nil {
					if errors.Is(err, graph.ErrEdgeCreatesCycle) {
						warnings = append(warnings, fmt.Sprintf("dependency cycle involving %q and %q", svc.Name, dep))
					}
					// Duplicate edges are harmless.
				}
			}
		}
	}
	return warnings
}
