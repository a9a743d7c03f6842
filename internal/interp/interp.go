// Package interp rewrites literal compose values into symbolic references
// against the deployment platform's naming and secret conventions, and
// escapes them for safe embedding in generator source text.
package interp

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tplforge/tplforge/internal/compose"
	"github.com/tplforge/tplforge/internal/schema"
)

// Secrets holds one generated-password binding per database-class service.
// Bindings are created before any value rewriting runs and never mutated.
type Secrets struct {
	order []string
	vars  map[string]string
}

// NewSecrets creates one binding per database service, in the given order.
// The binding is the generator-local variable name that will hold a
// randomPassword() call result.
func NewSecrets(databases []string) *Secrets {
	s := &Secrets{vars: make(map[string]string, len(databases))}
	for _, name := range databases {
		s.order = append(s.order, name)
		s.vars[name] = schema.CamelCase(name) + "Password"
	}
	return s
}

// Var returns the password variable bound to a database service.
func (s *Secrets) Var(service string) (string, bool) {
	v, ok := s.vars[service]
	return v, ok
}

// Services returns the bound service names in binding order.
func (s *Secrets) Services() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Escape escapes a raw value for embedding inside a template literal in the
// generator source: backticks and interpolation sigils are escaped, nothing
// else is altered.
func Escape(value string) string {
	value = strings.ReplaceAll(value, "`", "\\`")
	value = strings.ReplaceAll(value, "${", "\\${")
	return value
}

// SymbolicRef is the platform-level reference for a service: the project
// name token joined with the service's runtime-name field reference. It
// preserves the intent of "point at this logical service" across the
// renaming the schema introduces.
func SymbolicRef(service string) string {
	return "${input.projectName}_${input." + schema.ServiceNameField(service) + "}"
}

// Rewriter rewrites raw values that textually reference declared service
// names. Matching is literal-substring and best-effort: differently cased
// or partial references are missed, coincidental substrings are rewritten.
// Both outcomes are acceptable because a human review step is mandatory.
type Rewriter struct {
	names []string
}

// NewRewriter builds a rewriter over all declared service names. Longer
// names are substituted first so a short name never clobbers a reference to
// a longer one containing it; ties keep document order.
func NewRewriter(doc *compose.Document) *Rewriter {
	names := doc.ServiceNames()
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})
	return &Rewriter{names: names}
}

// Rewrite escapes value and substitutes symbolic references for every
// literal occurrence of a declared service name. Names are first replaced
// by opaque placeholders so one service's substitution can never match
// inside another's injected reference.
func (r *Rewriter) Rewrite(value string) string {
	out := Escape(value)
	for i, name := range r.names {
		out = strings.ReplaceAll(out, name, placeholder(i))
	}
	for i, name := range r.names {
		out = strings.ReplaceAll(out, placeholder(i), SymbolicRef(name))
	}
	return out
}

func placeholder(i int) string {
	return "\x00svc" + strconv.Itoa(i) + "\x00"
}
