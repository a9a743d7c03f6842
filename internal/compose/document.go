// Package compose provides compose document loading, parsing and value
// normalization for tplforge.
package compose

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed compose document: the declared services in document
// order plus the original text. It is immutable after Parse returns.
type Document struct {
	Services []Service

	// Source is the original document text, retained for the review-notes
	// excerpt. Never re-serialized.
	Source string

	// HasNetworks and HasVolumesBlock record the presence of top-level
	// blocks that are accepted but not interpreted.
	HasNetworks     bool
	HasVolumesBlock bool
}

// Service pairs a declared service name with its specification.
type Service struct {
	Name string
	Spec ServiceSpec
}

// FindService returns the named service, or false when it is not declared.
func (d *Document) FindService(name string) (Service, bool) {
	for _, svc := range d.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}

// ServiceNames returns all declared service names in document order.
func (d *Document) ServiceNames() []string {
	names := make([]string, 0, len(d.Services))
	for _, svc := range d.Services {
		names = append(names, svc.Name)
	}
	return names
}

// ServiceSpec holds the subset of a compose service definition that the
// translator interprets. Fields keep their raw compose encodings; the
// normalizers canonicalize them on demand.
type ServiceSpec struct {
	Image       string    `yaml:"image"`
	Build       *BuildRef `yaml:"build"`
	Command     Command   `yaml:"command"`
	Environment EnvBlock  `yaml:"environment"`
	Ports       []Token   `yaml:"ports"`
	Volumes     []Token   `yaml:"volumes"`
	DependsOn   DependsOn `yaml:"depends_on"`
}

// BuildRef is a compose build reference, declared either as a bare context
// string or as a mapping carrying at least a context.
type BuildRef struct {
	Context    string
	Dockerfile string
}

// UnmarshalYAML accepts both the short string form and the mapping form.
func (b *BuildRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		b.Context = node.Value
		return nil
	case yaml.MappingNode:
		var aux struct {
			Context    string `yaml:"context"`
			Dockerfile string `yaml:"dockerfile"`
		}
		if err := node.Decode(&aux); err != nil {
			return err
		}
		b.Context = aux.Context
		b.Dockerfile = aux.Dockerfile
		return nil
	default:
		return fmt.Errorf("line %d: build must be a string or a mapping", node.Line)
	}
}

// Command is a compose command override, declared as a string or a sequence
// of argument tokens.
type Command struct {
	parts   []string
	present bool
}

// UnmarshalYAML accepts both the string and the sequence form.
func (c *Command) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			c.parts = []string{node.Value}
			c.present = true
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range node.Content {
			c.parts = append(c.parts, item.Value)
		}
		c.present = true
		return nil
	default:
		return fmt.Errorf("line %d: command must be a string or a sequence", node.Line)
	}
}

// IsSet reports whether the service declared a command override.
func (c Command) IsSet() bool { return c.present }

// String renders the command as a single shell-style line. Sequence forms
// are joined with spaces; quoting inside tokens is left untouched.
func (c Command) String() string { return strings.Join(c.parts, " ") }

// Token is one ports/volumes list entry. Short-syntax scalar entries keep
// their literal text, so numeric port tokens like 8080 survive as strings.
// Long-syntax mapping entries are kept as a collapsed rendering for the
// review notes; they never canonicalize into a binding.
type Token struct {
	Text   string
	Scalar bool
}

// UnmarshalYAML accepts any node; only scalars are marked parseable.
func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.Text = node.Value
		t.Scalar = true
		return nil
	}

	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	t.Text = strings.Join(strings.Fields(string(data)), " ")
	return nil
}

// DependsOn is the list of services a service depends on. The sequence form
// and the mapping-with-conditions form are both accepted; conditions are
// discarded since the generated topology has no start-order semantics.
type DependsOn []string

// UnmarshalYAML accepts both the sequence and the mapping form.
func (d *DependsOn) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			*d = append(*d, item.Value)
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			*d = append(*d, node.Content[i].Value)
		}
		return nil
	default:
		return fmt.Errorf("line %d: depends_on must be a sequence or a mapping", node.Line)
	}
}

// Parse parses compose document text into a Document, preserving service
// declaration order. Only plain mapping/sequence/scalar nodes are
// interpreted; custom tags are rejected by the YAML decoder.
func Parse(text string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, &parseError{cause: err}
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &emptyDocumentError{}
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, &parseError{cause: fmt.Errorf("line %d: top level must be a mapping", top.Line)}
	}

	doc := &Document{Source: text}
	var servicesNode *yaml.Node

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "services":
			servicesNode = value
		case "networks":
			doc.HasNetworks = true
		case "volumes":
			doc.HasVolumesBlock = true
		}
	}

	if servicesNode == nil || servicesNode.Kind != yaml.MappingNode || len(servicesNode.Content) == 0 {
		return nil, &emptyDocumentError{}
	}

	for i := 0; i+1 < len(servicesNode.Content); i += 2 {
		key, value := servicesNode.Content[i], servicesNode.Content[i+1]

		var spec ServiceSpec
		if err := value.Decode(&spec); err != nil {
			return nil, &parseError{cause: fmt.Errorf("service %q: %w", key.Value, err)}
		}
		doc.Services = append(doc.Services, Service{Name: key.Value, Spec: spec})
	}

	return doc, nil
}
