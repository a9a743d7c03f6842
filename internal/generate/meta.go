package generate

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tplforge/tplforge/internal/schema"
)

// Meta renders the template metadata document: descriptive fields plus the
// embedded input schema. Keys keep a fixed order so the document is
// byte-identical across runs.
func Meta(slug string, s *schema.Schema) ([]byte, error) {
	schemaNode, err := s.MarshalYAML()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(root, "name", strNode(schema.TitleWords(slug)))
	appendPair(root, "description", strNode(
		"Template scaffolded from a compose document. Generated by tplforge; review NOTES.md before publishing."))
	appendPair(root, "instructions", nullNode())
	changeEntry := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(changeEntry, "date", strNode("unreleased"))
	appendPair(changeEntry, "description", strNode("first release"))
	appendPair(root, "changeLog", seqNode(changeEntry))
	appendPair(root, "links", seqNode())
	appendPair(root, "contributors", seqNode())
	appendPair(root, "schema", schemaNode.(*yaml.Node))
	appendPair(root, "logo", strNode("assets/logo.png"))
	appendPair(root, "screenshots", seqNode(strNode("assets/screenshot.png")))

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	return yaml.Marshal(doc)
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func seqNode(items ...*yaml.Node) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	if len(items) == 0 {
		n.Style = yaml.FlowStyle
	}
	n.Content = append(n.Content, items...)
	return n
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, strNode(key), value)
}
