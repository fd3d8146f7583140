package manifest

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func mustNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Unwrap the document node.
	return doc.Content[0]
}

func TestCloneNode_Independent(t *testing.T) {
	orig := mustNode(t, "a: 1\nb:\n  c: x\n")
	clone := CloneNode(orig)

	MappingSet(clone, "a", StringNode("changed"))
	if MappingGet(orig, "a").Value != "1" {
		t.Error("mutating the clone changed the original")
	}

	inner := MappingGet(clone, "b")
	MappingSet(inner, "c", StringNode("changed"))
	if MappingGet(MappingGet(orig, "b"), "c").Value != "x" {
		t.Error("mutating a nested clone node changed the original")
	}
}

func TestMappingSet_ReplaceAndAppend(t *testing.T) {
	n := mustNode(t, "a: 1\nb: 2\n")

	MappingSet(n, "a", IntNode(9))
	if got := MappingGet(n, "a").Value; got != "9" {
		t.Errorf("replaced value = %q, want 9", got)
	}
	if len(n.Content) != 4 {
		t.Errorf("replace must not grow the mapping, len(Content) = %d", len(n.Content))
	}

	MappingSet(n, "c", BoolNode(true))
	if got := MappingGet(n, "c"); got == nil || got.Value != "true" {
		t.Errorf("appended value = %v, want true", got)
	}
	// Appended keys land at the end.
	if n.Content[len(n.Content)-2].Value != "c" {
		t.Error("appended key is not last")
	}
}

func TestMappingGet_NonMapping(t *testing.T) {
	if MappingGet(StringNode("x"), "a") != nil {
		t.Error("MappingGet on a scalar must return nil")
	}
	if MappingGet(nil, "a") != nil {
		t.Error("MappingGet on nil must return nil")
	}
}
