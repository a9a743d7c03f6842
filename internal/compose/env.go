package compose

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar is one normalized environment entry.
type EnvVar struct {
	Key   string
	Value string
}

// EnvBlock holds a service's environment declaration in whichever encoding
// the document used: a mapping or a sequence of KEY=VALUE tokens.
type EnvBlock struct {
	node    yaml.Node
	present bool
}

// UnmarshalYAML captures the raw node; normalization happens on demand.
func (e *EnvBlock) UnmarshalYAML(node *yaml.Node) error {
	e.node = *node
	e.present = true
	return nil
}

// IsSet reports whether the service declared any environment block.
func (e EnvBlock) IsSet() bool { return e.present }

// NormalizeEnvironment canonicalizes an environment declaration into an
// ordered list of entries. Mapping entries keep document order; sequence
// tokens split on the first '=' so values may themselves contain '='. A
// token with no '=' yields an empty value rather than failing, since the
// output is reviewed by a human downstream.
func NormalizeEnvironment(e EnvBlock) []EnvVar {
	if !e.present {
		return nil
	}

	var out []EnvVar
	switch e.node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(e.node.Content); i += 2 {
			key, value := e.node.Content[i], e.node.Content[i+1]
			v := value.Value
			if value.Tag == "!!null" {
				v = ""
			}
			out = append(out, EnvVar{Key: key.Value, Value: v})
		}
	case yaml.SequenceNode:
		for _, item := range e.node.Content {
			key, value, _ := strings.Cut(item.Value, "=")
			out = append(out, EnvVar{Key: key, Value: value})
		}
	}
	return out
}

// MalformedEnvTokens returns sequence-form tokens that carried no '='.
// They still normalize to empty values; this is only for review notes.
func MalformedEnvTokens(e EnvBlock) []string {
	if !e.present || e.node.Kind != yaml.SequenceNode {
		return nil
	}

	var bad []string
	for _, item := range e.node.Content {
		if !strings.Contains(item.Value, "=") {
			bad = append(bad, item.Value)
		}
	}
	return bad
}
