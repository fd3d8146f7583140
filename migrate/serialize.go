package migrate

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/capsmith/capsmith/manifest"
)

// Serializer renders enhanced manifests back to YAML with a provenance
// header. The header is purely decorative: validation never requires it.
type Serializer struct {
	// Now supplies the generation timestamp; defaults to time.Now.
	Now func() time.Time
	// RunID tags the output with the migration run that produced it.
	RunID string
}

// Render serializes m with the provenance header prepended. Key order
// follows struct declaration order and embedded node order; nothing is
// sorted.
func (s *Serializer) Render(m *manifest.EnhancedManifest) ([]byte, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Enhanced capability file (MCP %s)\n", manifest.ProtocolVersion)
	buf.WriteString("# Generated by: capsmith migrate\n")
	if s.RunID != "" {
		fmt.Fprintf(&buf, "# Run: %s\n", s.RunID)
	}
	fmt.Fprintf(&buf, "# Date: %s\n", now().UTC().Format(time.RFC3339))
	buf.WriteString("#\n")
	buf.WriteString("# Features:\n")
	buf.WriteString("#   - AI-enhanced discovery and parameter intelligence\n")
	buf.WriteString("#   - Security sandboxing and access control\n")
	buf.WriteString("#   - Progress tracking and cancellation support\n")
	buf.WriteString("#   - Execution monitoring and performance analytics\n")
	buf.WriteString("\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding enhanced manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("flushing enhanced manifest: %w", err)
	}
	return buf.Bytes(), nil
}
