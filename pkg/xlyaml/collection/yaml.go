package collection

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// mergeKey is read back as a YAML merge key unless it is quoted.
const mergeKey = "<<"

// YAMLNode converts a lowered value (string, nil, []any, map[string]any or
// a yaml.Marshaler) into a node. Mapping keys are sorted. The string "<<"
// is always double quoted so it round-trips as a plain key.
func YAMLNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *yaml.Node:
		return t, nil
	case yaml.Marshaler:
		inner, err := t.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return YAMLNode(inner)
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return stringNode(t), nil
	case map[string]any:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range slices.Sorted(maps.Keys(t)) {
			val, err := YAMLNode(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			n.Content = append(n.Content, stringNode(k), val)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range t {
			val, err := YAMLNode(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			n.Content = append(n.Content, val)
		}
		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(t); err != nil {
			return nil, err
		}
		return n, nil
	}
}

func stringNode(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if s == mergeKey {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}
