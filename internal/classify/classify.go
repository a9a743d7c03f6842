// Package classify partitions declared compose services into database,
// application and other categories using name and image heuristics.
package classify

import (
	"strings"

	"github.com/tplforge/tplforge/internal/compose"
)

// Class labels a declared service.
type Class int

// Service classes. A service is exactly one of these.
const (
	Database Class = iota
	Application
	Other
)

// String returns the lowercase label used in output documents.
func (c Class) String() string {
	switch c {
	case Database:
		return "database"
	case Application:
		return "application"
	default:
		return "other"
	}
}

// engineKeywords is the recognized set of database-engine keywords, matched
// as literal substrings of the lowercased image reference and service name.
// Order fixes which engine wins when several match.
var engineKeywords = []string{
	"postgres",
	"mysql",
	"mariadb",
	"mongo",
	"redis",
	"elasticsearch",
}

// Classify labels one service. It is a pure function of the name and spec:
// recomputing it on the same input always yields the same class.
func Classify(name string, spec compose.ServiceSpec) Class {
	if Engine(name, spec) != "" {
		return Database
	}
	if spec.Image != "" || spec.Build != nil {
		return Application
	}
	return Other
}

// Engine returns the database engine keyword matched by the service, or ""
// when the service is not database-class.
func Engine(name string, spec compose.ServiceSpec) string {
	haystack := strings.ToLower(spec.Image + " " + name)
	for _, keyword := range engineKeywords {
		if strings.Contains(haystack, keyword) {
			return keyword
		}
	}
	return ""
}

// Analysis partitions all declared service names into the three classes.
// Each set preserves document order; every name appears in exactly one set.
type Analysis struct {
	Databases    []string
	Applications []string
	Others       []string
}

// Partition classifies every service in the document.
func Partition(doc *compose.Document) Analysis {
	var a Analysis
	for _, svc := range doc.Services {
		switch Classify(svc.Name, svc.Spec) {
		case Database:
			a.Databases = append(a.Databases, svc.Name)
		case Application:
			a.Applications = append(a.Applications, svc.Name)
		default:
			a.Others = append(a.Others, svc.Name)
		}
	}
	return a
}

// Ordered returns all service names in emission order: databases first,
// then applications, then others, document order within each group.
func (a Analysis) Ordered() []string {
	out := make([]string, 0, len(a.Databases)+len(a.Applications)+len(a.Others))
	out = append(out, a.Databases...)
	out = append(out, a.Applications...)
	out = append(out, a.Others...)
	return out
}
