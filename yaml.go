package formflat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into a [Value], keeping mapping keys in
// document order. Aliases are resolved and scalars are decoded with their
// resolved YAML type. An empty document yields [Undefined].
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("form: invalid yaml: %w", err)
	}
	if doc.Kind == 0 {
		return Undefined(), nil
	}
	v, err := yamlValue(&doc)
	if err != nil {
		return Value{}, fmt.Errorf("form: invalid yaml: %w", err)
	}
	return v, nil
}

func yamlValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Undefined(), nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			e, err := yamlValue(v)
			if err != nil {
				return Value{}, err
			}
			m.Set(k.Value, e)
		}
		return Mapping(m), nil
	case yaml.SequenceNode:
		elems := make([]Value, len(n.Content))
		for i, c := range n.Content {
			e, err := yamlValue(c)
			if err != nil {
				return Value{}, err
			}
			elems[i] = e
		}
		return Sequence(elems...), nil
	case yaml.ScalarNode:
		var x interface{}
		if err := n.Decode(&x); err != nil {
			return Value{}, err
		}
		return Scalar(x), nil
	default:
		return Value{}, fmt.Errorf("line %d: unsupported node kind %v", n.Line, n.Kind)
	}
}
