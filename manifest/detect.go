package manifest

import "strings"

// enhancedSections are the per-tool sections that mark the enhanced format.
var enhancedSections = []string{"core", "execution", "discovery", "monitoring", "access"}

// enhancedMarker is the textual marker migrated documents carry in their
// generated name and description fields.
var enhancedMarker = "MCP " + ProtocolVersion

// IsEnhanced reports whether a parsed manifest tree is in the enhanced
// format. The heuristic is lenient so that partially upgraded files are
// still detected: any enhanced metadata key, a first tool with at least
// three of the five enhanced sections, or the protocol marker string
// anywhere in the document qualifies.
func IsEnhanced(doc map[string]any) bool {
	if doc == nil {
		return false
	}

	if metadata, ok := doc["metadata"].(map[string]any); ok {
		for _, key := range []string{"classification", "discovery_metadata", "mcp_capabilities"} {
			if _, present := metadata[key]; present {
				return true
			}
		}
	}

	if tools, ok := doc["tools"].([]any); ok && len(tools) > 0 {
		if first, ok := tools[0].(map[string]any); ok {
			count := 0
			for _, section := range enhancedSections {
				if _, present := first[section]; present {
					count++
				}
			}
			if count >= 3 {
				return true
			}
		}
	}

	return containsMarker(doc)
}

func containsMarker(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.Contains(t, enhancedMarker)
	case map[string]any:
		for _, val := range t {
			if containsMarker(val) {
				return true
			}
		}
	case []any:
		for _, val := range t {
			if containsMarker(val) {
				return true
			}
		}
	}
	return false
}
