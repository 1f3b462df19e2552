package conf

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse parses YAML bytes into a Configuration. The document must be a flat
// mapping of scalar keys to scalar values; entry order is preserved. A
// duplicate key overwrites the earlier value but keeps its original position.
// Any parse failure surfaces unmodified.
func Parse(data []byte) (*Configuration, error) {
	c := New()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Configuration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("conf: configuration must be a mapping, got %s", yamlKindName(node.Kind))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("conf: key: %w", err)
		}
		var v Value
		if err := valNode.Decode(&v); err != nil {
			return fmt.Errorf("conf: %q: %w", key, err)
		}
		c.Set(key, v)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting entries in insertion order.
func (c *Configuration) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range c.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(k); err != nil {
			return nil, fmt.Errorf("conf: key %q: %w", k, err)
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(c.values[k].goValue()); err != nil {
			return nil, fmt.Errorf("conf: %q: %w", k, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
