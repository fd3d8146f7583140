package manifest

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Node helpers for the arbitrary YAML sub-trees (input schemas, parameter
// intelligence) that must survive migration with their key order intact.
// Deserializing those blocks into Go maps would scramble declaration order,
// so migration manipulates yaml.Node values directly.

// CloneNode returns a deep copy of n. A nil input yields nil.
func CloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	out := *n
	out.Alias = nil
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = CloneNode(c)
		}
	}
	return &out
}

// MappingGet returns the value node for key in mapping n, or nil when the
// key is absent or n is not a mapping.
func MappingGet(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// MappingSet sets key to value in mapping n, replacing an existing entry in
// place or appending a new one at the end.
func MappingSet(n *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			n.Content[i+1] = value
			return
		}
	}
	n.Content = append(n.Content, StringNode(key), value)
}

// MappingNode returns an empty block-style mapping node.
func MappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// SequenceNode returns a sequence node holding items.
func SequenceNode(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

// StringNode returns a scalar string node.
func StringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// BoolNode returns a scalar boolean node.
func BoolNode(b bool) *yaml.Node {
	v := "false"
	if b {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}

// IntNode returns a scalar integer node.
func IntNode(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

// NullNode returns a scalar null node.
func NullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
