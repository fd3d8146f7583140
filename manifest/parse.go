package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseDocument parses raw YAML into a generic tree. Validation and format
// detection operate on this untyped form so that malformed or partially
// upgraded documents can still be inspected.
func ParseDocument(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		// Scalar or sequence documents are structurally not manifests;
		// callers treat an empty tree as a manifest with no content.
		return map[string]any{}, nil
	}
	return m, nil
}

// ParseLegacy decodes raw YAML into the typed legacy manifest shape used by
// migration. Unknown keys are ignored.
func ParseLegacy(data []byte) (*LegacyManifest, error) {
	var m LegacyManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing legacy manifest: %w", err)
	}
	return &m, nil
}

// LoadDocument reads a file and parses it into a generic tree.
func LoadDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseDocument(data)
}
