// Package schema synthesizes the typed input schema describing the
// user-facing configuration fields of a generated template.
package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tplforge/tplforge/internal/classify"
	"github.com/tplforge/tplforge/internal/compose"
)

// Field describes one schema property. Default is a pointer so that an
// empty-string default stays distinguishable from no default.
type Field struct {
	Type    string
	Title   string
	Default *string
}

// Schema is an append-only ordered collection of fields. Insertion order is
// preserved and the first writer of a field name wins; later duplicates are
// silently ignored.
type Schema struct {
	required []string
	order    []string
	fields   map[string]Field
}

// New creates an empty schema.
func New() *Schema {
	return &Schema{fields: make(map[string]Field)}
}

// Add inserts a field. It reports whether the field was inserted; a false
// return means the name was already present and nothing changed.
func (s *Schema) Add(name string, required bool, f Field) bool {
	if _, exists := s.fields[name]; exists {
		return false
	}
	s.fields[name] = f
	s.order = append(s.order, name)
	if required {
		s.required = append(s.required, name)
	}
	return true
}

// Has reports whether a field name is present.
func (s *Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Names returns all field names in insertion order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Required returns the required field names in insertion order.
func (s *Schema) Required() []string {
	out := make([]string, len(s.required))
	copy(out, s.required)
	return out
}

// Field returns a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Synthesize builds the input schema for a classified document. The schema
// is seeded with the required project identifier, then per service — in
// emission order — a required runtime-name field (defaulting to the
// declared name), a required image field when the service carries an image,
// and an optional field per normalized environment entry.
func Synthesize(doc *compose.Document, analysis classify.Analysis) *Schema {
	s := New()
	s.Add(ProjectNameField, true, Field{Type: "string", Title: "Project Name"})

	for _, name := range analysis.Ordered() {
		svc, ok := doc.FindService(name)
		if !ok {
			continue
		}

		declared := svc.Name
		s.Add(ServiceNameField(svc.Name), true, Field{
			Type:    "string",
			Title:   TitleWords(svc.Name) + " Service Name",
			Default: &declared,
		})

		if svc.Spec.Image != "" {
			image := svc.Spec.Image
			s.Add(ServiceImageField(svc.Name), true, Field{
				Type:    "string",
				Title:   TitleWords(svc.Name) + " Image",
				Default: &image,
			})
		}

		for _, env := range compose.NormalizeEnvironment(svc.Spec.Environment) {
			value := env.Value
			s.Add(EnvField(svc.Name, env.Key), false, Field{
				Type:    "string",
				Title:   fmt.Sprintf("%s: %s", svc.Name, env.Key),
				Default: &value,
			})
		}
	}

	return s
}

// MarshalYAML renders the schema as an ordered mapping with type, required
// and properties keys, preserving field insertion order.
func (s *Schema) MarshalYAML() (interface{}, error) {
	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range s.order {
		f := s.fields[name]

		prop := &yaml.Node{Kind: yaml.MappingNode}
		appendScalarPair(prop, "type", f.Type)
		appendScalarPair(prop, "title", f.Title)
		if f.Default != nil {
			appendScalarPair(prop, "default", *f.Default)
		}

		props.Content = append(props.Content, scalarNode(name), prop)
	}

	required := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, name := range s.required {
		required.Content = append(required.Content, scalarNode(name))
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		scalarNode("type"), scalarNode("object"),
		scalarNode("required"), required,
		scalarNode("properties"), props,
	)
	return root, nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func appendScalarPair(m *yaml.Node, key, value string) {
	m.Content = append(m.Content, scalarNode(key), scalarNode(value))
}
