package sample

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes one YAML document into a Value. The node tree is walked
// directly so mapping key order survives, unlike unmarshalling into a map.
// Scalar tags outside str/int/float/null/bool fail decoding.
func DecodeYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("sample: parse yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, errors.New("sample: empty yaml document")
	}
	return yamlValue(root.Content[0])
}

func yamlValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("sample: line %d: non-scalar mapping key", keyNode.Line)
			}
			value, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make(Array, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	case yaml.ScalarNode:
		return yamlScalar(node)
	default:
		return nil, fmt.Errorf("sample: line %d: unsupported yaml node kind %d", node.Line, node.Kind)
	}
}

func yamlScalar(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!str":
		return node.Value, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, fmt.Errorf("sample: line %d: decode integer: %w", node.Line, err)
		}
		return i, nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("sample: line %d: decode float: %w", node.Line, err)
		}
		return f, nil
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("sample: line %d: decode bool: %w", node.Line, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("sample: line %d: unsupported yaml scalar tag %s", node.Line, node.Tag)
	}
}
