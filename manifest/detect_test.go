package manifest

import "testing"

func parseDoc(t *testing.T, src string) map[string]any {
	t.Helper()
	doc, err := ParseDocument([]byte(src))
	if err != nil {
		t.Fatalf("ParseDocument error: %v", err)
	}
	return doc
}

func TestIsEnhanced_MetadataKeys(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{
			name: "classification key",
			src: `
metadata:
  classification:
    security_level: safe
`,
			want: true,
		},
		{
			name: "discovery_metadata key",
			src: `
metadata:
  discovery_metadata:
    llm_enhanced: true
`,
			want: true,
		},
		{
			name: "mcp_capabilities key",
			src: `
metadata:
  mcp_capabilities:
    version: "2025-06-18"
`,
			want: true,
		},
		{
			name: "legacy metadata",
			src: `
metadata:
  name: File Tools
  description: Legacy tools
tools:
  - name: read_file
`,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsEnhanced(parseDoc(t, tc.src)); got != tc.want {
				t.Errorf("IsEnhanced = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsEnhanced_ToolSections(t *testing.T) {
	// Three of five enhanced sections on the first tool is enough.
	partial := `
tools:
  - name: enhanced_read_file
    core:
      description: d
    execution:
      routing:
        type: enhanced_subprocess
    access:
      hidden: true
`
	if !IsEnhanced(parseDoc(t, partial)) {
		t.Error("expected partial upgrade with 3 sections to be detected as enhanced")
	}

	two := `
tools:
  - name: read_file
    core:
      description: d
    access:
      hidden: true
`
	if IsEnhanced(parseDoc(t, two)) {
		t.Error("expected tool with only 2 enhanced sections to be legacy")
	}
}

func TestIsEnhanced_MarkerString(t *testing.T) {
	doc := parseDoc(t, `
metadata:
  name: Something
  description: Rebuilt for MCP 2025-06-18 compliance
`)
	if !IsEnhanced(doc) {
		t.Error("expected protocol marker in a string field to be detected as enhanced")
	}
}

func TestIsEnhanced_Nil(t *testing.T) {
	if IsEnhanced(nil) {
		t.Error("nil document must not be enhanced")
	}
}
