package validate

import "fmt"

func (v *Validator) validateLegacy(path string, doc map[string]any) {
	tools, _ := doc["tools"].([]any)
	if len(tools) == 0 {
		v.add(path, LevelError, "Legacy format must contain at least one tool", "")
		return
	}

	for i, raw := range tools {
		tool, ok := raw.(map[string]any)
		if !ok {
			v.add(path, LevelError, fmt.Sprintf("Tool %d: not a mapping", i), "")
			continue
		}

		toolName, _ := tool["name"].(string)
		if toolName == "" {
			toolName = fmt.Sprintf("tool_%d", i)
			v.add(path, LevelError, fmt.Sprintf("Tool %d: Missing name", i), "")
		}
		if isEmpty(tool["description"]) {
			v.add(path, LevelError, fmt.Sprintf("Tool '%s': Missing description", toolName), "")
		}
		if !hasValue(tool["inputSchema"]) {
			v.add(path, LevelError, fmt.Sprintf("Tool '%s': Missing inputSchema", toolName), "")
		}
		routing, _ := tool["routing"].(map[string]any)
		if isEmpty(routing["type"]) {
			v.add(path, LevelError, fmt.Sprintf("Tool '%s': Missing routing type", toolName), "")
		}
	}
}

// hasValue reports whether a field holds any non-empty value, whatever its
// shape. Legacy files carry inputSchema in several forms, so this check is
// about presence, not structure.
func hasValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case int:
		return val != 0
	case float64:
		return val != 0
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}
