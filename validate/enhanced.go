package validate

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/capsmith/capsmith/classify"
	"github.com/capsmith/capsmith/manifest"
)

var requiredToolSections = []string{"name", "core", "execution", "discovery", "monitoring", "access"}

func (v *Validator) validateEnhanced(path string, doc map[string]any) {
	metadata, ok := doc["metadata"].(map[string]any)
	if !ok {
		v.add(path, LevelError, "Enhanced format requires metadata object", "")
	} else {
		v.validateEnhancedMetadata(path, metadata)
	}

	tools, _ := doc["tools"].([]any)
	if len(tools) == 0 {
		v.add(path, LevelError, "Enhanced format must contain at least one tool", "")
		return
	}
	for i, raw := range tools {
		tool, ok := raw.(map[string]any)
		if !ok {
			v.add(path, LevelError, fmt.Sprintf("Tool %d: not a mapping", i), "")
			continue
		}
		v.validateEnhancedTool(path, tool, i)
	}
}

func (v *Validator) validateEnhancedMetadata(path string, metadata map[string]any) {
	var missing []string
	for _, field := range []string{"name", "description", "version", "author"} {
		if isEmpty(metadata[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		v.add(path, LevelError,
			"Missing required metadata fields: "+strings.Join(missing, ", "), "")
	}

	if classification, ok := metadata["classification"].(map[string]any); ok {
		v.validateClassification(path, classification)
	}
	if discovery, ok := metadata["discovery_metadata"].(map[string]any); ok {
		v.validateDiscoveryMetadata(path, discovery)
	}
	if capabilities, ok := metadata["mcp_capabilities"].(map[string]any); ok {
		v.validateMCPCapabilities(path, capabilities)
	}
}

func (v *Validator) validateClassification(path string, classification map[string]any) {
	if level, ok := classification["security_level"].(string); ok && level != "" {
		if !classify.ValidSecurityLevel(level) {
			v.add(path, LevelError, fmt.Sprintf(
				"Invalid security_level: %s. Must be one of: %s",
				level, strings.Join(classify.SecurityLevels, ", ")), "")
		}
	}
	if level, ok := classification["complexity_level"].(string); ok && level != "" {
		if !classify.ValidComplexityLevel(level) {
			v.add(path, LevelError, fmt.Sprintf(
				"Invalid complexity_level: %s. Must be one of: %s",
				level, strings.Join(classify.ComplexityLevels, ", ")), "")
		}
	}
}

func (v *Validator) validateDiscoveryMetadata(path string, discovery map[string]any) {
	var missing []string
	for _, field := range []string{"primary_keywords", "semantic_embeddings", "llm_enhanced", "workflow_enabled"} {
		if _, present := discovery[field]; !present {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		v.add(path, LevelWarning,
			"Missing recommended discovery_metadata fields: "+strings.Join(missing, ", "), "")
	}
}

func (v *Validator) validateMCPCapabilities(path string, capabilities map[string]any) {
	if version, _ := capabilities["version"].(string); version != manifest.ProtocolVersion {
		v.add(path, LevelError, fmt.Sprintf(
			"Invalid MCP version: %v. Expected: %s", capabilities["version"], manifest.ProtocolVersion), "")
	}

	var missing []string
	for _, flag := range []string{
		"supports_cancellation", "supports_progress", "supports_sampling",
		"supports_validation", "supports_elicitation",
	} {
		if _, present := capabilities[flag]; !present {
			missing = append(missing, flag)
		}
	}
	if len(missing) > 0 {
		v.add(path, LevelWarning,
			"Missing MCP capability declarations: "+strings.Join(missing, ", "), "")
	}
}

func (v *Validator) validateEnhancedTool(path string, tool map[string]any, index int) {
	toolName, _ := tool["name"].(string)
	if toolName == "" {
		toolName = fmt.Sprintf("tool_%d", index)
	}

	var missing []string
	for _, section := range requiredToolSections {
		if _, present := tool[section]; !present {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		// A tool with a whole section absent gets one ERROR; its
		// remaining section checks are skipped.
		v.add(path, LevelError, fmt.Sprintf(
			"Tool '%s': Missing required sections: %s", toolName, strings.Join(missing, ", ")), "")
		return
	}

	core, _ := tool["core"].(map[string]any)
	v.validateToolCore(path, toolName, core)
	execution, _ := tool["execution"].(map[string]any)
	v.validateToolExecution(path, toolName, execution)
	discovery, _ := tool["discovery"].(map[string]any)
	v.validateToolDiscovery(path, toolName, discovery)
	monitoring, _ := tool["monitoring"].(map[string]any)
	v.validateToolMonitoring(path, toolName, monitoring)
	access, _ := tool["access"].(map[string]any)
	v.validateToolAccess(path, toolName, access)
}

func (v *Validator) validateToolCore(path, toolName string, core map[string]any) {
	if isEmpty(core["description"]) {
		v.add(path, LevelError, fmt.Sprintf("Tool '%s': Core section missing description", toolName), "")
	}

	schema, ok := core["input_schema"].(map[string]any)
	if !ok || len(schema) == 0 {
		v.add(path, LevelError, fmt.Sprintf("Tool '%s': Core section missing valid input_schema", toolName), "")
		return
	}
	if err := compileSchema(schema); err != nil {
		v.add(path, LevelWarning,
			fmt.Sprintf("Tool '%s': input_schema does not compile as JSON Schema", toolName), err.Error())
	}
}

func (v *Validator) validateToolExecution(path, toolName string, execution map[string]any) {
	routing, _ := execution["routing"].(map[string]any)
	if isEmpty(routing["type"]) {
		v.add(path, LevelError, fmt.Sprintf("Tool '%s': Execution section missing routing type", toolName), "")
	}

	security, _ := execution["security"].(map[string]any)
	if isEmpty(security["classification"]) {
		v.add(path, LevelWarning, fmt.Sprintf("Tool '%s': Execution section missing security classification", toolName), "")
	}
}

func (v *Validator) validateToolDiscovery(path, toolName string, discovery map[string]any) {
	aiEnhanced, _ := discovery["ai_enhanced"].(map[string]any)
	if isEmpty(aiEnhanced["description"]) {
		v.add(path, LevelWarning, fmt.Sprintf("Tool '%s': Discovery section missing AI-enhanced description", toolName), "")
	}
}

func (v *Validator) validateToolMonitoring(path, toolName string, monitoring map[string]any) {
	progress, _ := monitoring["progress_tracking"].(map[string]any)
	if _, present := progress["enabled"]; !present {
		v.add(path, LevelWarning, fmt.Sprintf("Tool '%s': Monitoring section missing progress_tracking.enabled", toolName), "")
	}

	cancellation, _ := monitoring["cancellation"].(map[string]any)
	if _, present := cancellation["enabled"]; !present {
		v.add(path, LevelWarning, fmt.Sprintf("Tool '%s': Monitoring section missing cancellation.enabled", toolName), "")
	}
}

func (v *Validator) validateToolAccess(path, toolName string, access map[string]any) {
	var missing []string
	for _, field := range []string{"hidden", "enabled", "requires_permissions", "user_groups"} {
		if _, present := access[field]; !present {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		v.add(path, LevelWarning, fmt.Sprintf(
			"Tool '%s': Access section missing fields: %s", toolName, strings.Join(missing, ", ")), "")
	}
}

// compileSchema checks that a tool input schema compiles as a JSON Schema.
func compileSchema(schema map[string]any) error {
	_, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	return err
}

// isEmpty reports whether a field is absent, nil, or an empty string; all
// three count as missing for required scalar fields.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
