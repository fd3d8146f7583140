package migrate

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/capsmith/capsmith/classify"
	"github.com/capsmith/capsmith/manifest"
)

// complexTriggers mark a tool as complex for performance and monitoring
// purposes when any of them appears in its name.
var complexTriggers = []string{"database", "process", "analyze", "transform"}

// deniedFilesystemPatterns is the fixed deny list attached to restricted
// tools.
var deniedFilesystemPatterns = []string{"/etc/*", "/root/*", "*.private"}

// EnhanceTool transforms one legacy tool definition into an enhanced tool
// definition with all five sections populated. A legacy entry with no name
// is tolerated with a placeholder rather than aborting the batch.
func EnhanceTool(tool manifest.LegacyTool) manifest.EnhancedTool {
	name := tool.Name
	if name == "" {
		name = "unknown_tool"
	}
	description := tool.Description
	if description == "" {
		description = "Enhanced " + name
	}

	classification := classify.ToolSecurity(name)
	complexTool := isComplex(name)
	hidden := true
	if tool.Hidden != nil {
		hidden = *tool.Hidden
	}

	return manifest.EnhancedTool{
		Name: "enhanced_" + name,
		Core: manifest.ToolCore{
			Description: fmt.Sprintf("AI-enhanced %s with MCP %s compliance", description, manifest.ProtocolVersion),
			InputSchema: enhanceInputSchema(&tool.InputSchema),
		},
		Execution: manifest.ToolExecution{
			Routing:     enhanceRouting(tool.Routing),
			Security:    securityConfig(classification),
			Performance: performanceConfig(name, complexTool),
		},
		Discovery: manifest.ToolDiscovery{
			AIEnhanced:            aiDiscovery(name, description),
			ParameterIntelligence: parameterIntelligence(&tool.InputSchema),
		},
		Monitoring: monitoringConfig(name, complexTool),
		Access: manifest.ToolAccess{
			Hidden:              hidden,
			Enabled:             true,
			RequiresPermissions: Permissions(classification),
			UserGroups:          userGroups(classification),
			ApprovalRequired:    classification == "dangerous" || classification == "privileged",
		},
	}
}

func isComplex(name string) bool {
	id := strings.ToLower(name)
	for _, t := range complexTriggers {
		if strings.Contains(id, t) {
			return true
		}
	}
	return false
}

// enhanceInputSchema deep-copies the legacy schema, injects validation
// hints for path and content properties, and forces additionalProperties
// to false on the schema root. Key order of the original schema survives.
func enhanceInputSchema(schema *yaml.Node) *yaml.Node {
	var enhanced *yaml.Node
	if schema != nil && schema.Kind == yaml.MappingNode {
		enhanced = manifest.CloneNode(schema)
	} else {
		enhanced = manifest.MappingNode()
	}

	if props := manifest.MappingGet(enhanced, "properties"); props != nil && props.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(props.Content); i += 2 {
			propName := strings.ToLower(props.Content[i].Value)
			prop := props.Content[i+1]
			if prop.Kind != yaml.MappingNode {
				continue
			}
			switch {
			case strings.Contains(propName, "path"):
				validation := manifest.MappingNode()
				manifest.MappingSet(validation, "path_traversal_protection", manifest.BoolNode(true))
				manifest.MappingSet(validation, "security_scan", manifest.BoolNode(true))
				manifest.MappingSet(prop, "validation", validation)
			case strings.Contains(propName, "content"):
				validation := manifest.MappingNode()
				manifest.MappingSet(validation, "max_size_mb", manifest.IntNode(10))
				manifest.MappingSet(validation, "content_filter", manifest.BoolNode(true))
				manifest.MappingSet(prop, "validation", validation)
			}
		}
	}

	manifest.MappingSet(enhanced, "additionalProperties", manifest.BoolNode(false))
	return enhanced
}

// enhanceRouting wraps the legacy routing type and copies the dispatch
// config into a primary target. Subprocess tools get a static echo fallback
// so that a missing interpreter degrades instead of failing hard.
func enhanceRouting(routing manifest.LegacyRouting) manifest.EnhancedRouting {
	routingType := routing.Type
	if routingType == "" {
		routingType = "subprocess"
	}
	command := routing.Config.Command
	if command == "" {
		command = "echo"
	}
	args := routing.Config.Args
	if args == nil {
		args = []string{}
	}
	timeout := routing.Config.Timeout
	if timeout == 0 {
		timeout = 30
	}

	enhanced := manifest.EnhancedRouting{
		Type: "enhanced_" + routingType,
		Primary: manifest.RoutingTarget{
			Command:        command,
			Args:           args,
			TimeoutSeconds: timeout,
		},
	}
	if routingType == "subprocess" {
		enhanced.Fallback = &manifest.RoutingTarget{
			Command:        "echo",
			Args:           []string{`"Operation completed with fallback"`},
			TimeoutSeconds: 10,
		}
	}
	return enhanced
}

// securityConfig builds the sandbox profile for a classification: baseline
// caps, tightened for dangerous tools and loosened for privileged ones;
// restricted tools additionally lose network access and sensitive paths.
func securityConfig(classification string) manifest.SecurityConfig {
	cfg := manifest.SecurityConfig{
		Classification: classification,
		Sandbox: manifest.SandboxConfig{
			Resources: manifest.SandboxResources{
				MaxMemoryMB:         256,
				MaxCPUPercent:       30,
				MaxExecutionSeconds: 60,
			},
			Environment: manifest.SandboxEnvironment{ReadonlySystem: true},
		},
	}

	switch classification {
	case "dangerous":
		cfg.RequiresApproval = true
		cfg.ApprovalWorkflow = "security_review"
		cfg.Sandbox.Resources.MaxMemoryMB = 128
		cfg.Sandbox.Resources.MaxExecutionSeconds = 30
	case "privileged":
		cfg.RequiresApproval = true
		cfg.Sandbox.Resources.MaxMemoryMB = 512
	case "restricted":
		cfg.Sandbox.Filesystem = &manifest.SandboxFilesystem{
			DeniedPatterns: append([]string(nil), deniedFilesystemPatterns...),
		}
		cfg.Sandbox.Network = &manifest.SandboxNetwork{Allowed: false}
	}
	return cfg
}

func performanceConfig(name string, complexTool bool) manifest.PerformanceConfig {
	simple, complexOp := 5, 30
	if complexTool {
		simple, complexOp = 15, 120
	}
	complexity := "moderate"
	if complexTool {
		complexity = "complex"
	}

	cacheable := strings.HasPrefix(name, "read") || strings.HasPrefix(name, "get")
	ttl := 0
	// Only read-prefixed tools get a nonzero TTL; get-prefixed tools are
	// cacheable with TTL 0.
	if strings.HasPrefix(name, "read") {
		ttl = 300
	}

	return manifest.PerformanceConfig{
		EstimatedDuration: manifest.DurationEstimate{
			SimpleOperation:  simple,
			ComplexOperation: complexOp,
		},
		Complexity:           complexity,
		SupportsCancellation: true,
		SupportsProgress:     complexTool,
		CacheResults:         cacheable,
		CacheTTLSeconds:      ttl,
	}
}

func aiDiscovery(name, description string) manifest.AIDiscovery {
	return manifest.AIDiscovery{
		Description: fmt.Sprintf("AI-enhanced %s with intelligent processing and security validation", description),
		UsagePatterns: []string{
			fmt.Sprintf("use %s to {action}", name),
			fmt.Sprintf("help me {accomplish_task} with %s", name),
			fmt.Sprintf("%s for {specific_purpose}", name),
		},
		SemanticContext: manifest.SemanticContext{
			PrimaryIntent: classify.Intent(name),
			Operations:    classify.Operations(name),
			DataTypes:     []string{"structured", "unstructured"},
		},
		WorkflowIntegration: manifest.WorkflowIntegration{
			TypicallyFollows:   []string{},
			TypicallyPrecedes:  []string{},
			ChainCompatibility: []string{"general_workflow"},
		},
	}
}

// parameterIntelligence attaches a required-validation rule to every
// declared input property, in declaration order, plus path-pattern
// suggestions for path-like properties.
func parameterIntelligence(schema *yaml.Node) *yaml.Node {
	intelligence := manifest.MappingNode()
	props := manifest.MappingGet(schema, "properties")
	if props == nil || props.Kind != yaml.MappingNode {
		return intelligence
	}

	for i := 0; i+1 < len(props.Content); i += 2 {
		paramName := props.Content[i].Value
		prop := props.Content[i+1]

		smartDefault := manifest.NullNode()
		if def := manifest.MappingGet(prop, "default"); def != nil {
			smartDefault = manifest.CloneNode(def)
		}

		rule := manifest.MappingNode()
		manifest.MappingSet(rule, "rule", manifest.StringNode("required_validation"))
		manifest.MappingSet(rule, "message", manifest.StringNode(paramName+" must be provided and valid"))

		entry := manifest.MappingNode()
		manifest.MappingSet(entry, "smart_default", smartDefault)
		manifest.MappingSet(entry, "validation", manifest.SequenceNode(rule))

		if strings.Contains(strings.ToLower(paramName), "path") {
			suggestion := manifest.MappingNode()
			manifest.MappingSet(suggestion, "pattern", manifest.StringNode("*"))
			manifest.MappingSet(suggestion, "description", manifest.StringNode("File system paths"))
			manifest.MappingSet(suggestion, "examples", manifest.SequenceNode(
				manifest.StringNode("/path/to/file"),
				manifest.StringNode("./relative/path"),
			))
			manifest.MappingSet(entry, "smart_suggestions", manifest.SequenceNode(suggestion))
		}

		manifest.MappingSet(intelligence, paramName, entry)
	}
	return intelligence
}

func monitoringConfig(name string, complexTool bool) manifest.ToolMonitoring {
	granularity := "basic"
	gracefulTimeout := 10
	if complexTool {
		granularity = "detailed"
		gracefulTimeout = 30
	}

	monitoring := manifest.ToolMonitoring{
		ProgressTracking: manifest.ProgressTracking{
			Enabled:     complexTool,
			Granularity: granularity,
		},
		Cancellation: manifest.Cancellation{
			Enabled:                true,
			GracefulTimeoutSeconds: gracefulTimeout,
			CleanupRequired:        complexTool,
		},
		Metrics: manifest.MetricsConfig{
			TrackExecutionTime: true,
			TrackSuccessRate:   true,
			CustomMetrics:      []string{name + "_operations_completed"},
		},
	}

	if complexTool {
		monitoring.ProgressTracking.SubOperations = []manifest.SubOperation{
			{ID: "initialization", Name: "Initializing operation", EstimatedPercentage: 20},
			{ID: "processing", Name: "Processing data", EstimatedPercentage: 70},
			{ID: "finalization", Name: "Completing operation", EstimatedPercentage: 10},
		}
	}
	return monitoring
}

// Permissions returns the permission set for a classification. The ladder
// is cumulative: each step up keeps every permission of the previous one.
func Permissions(classification string) []string {
	perms := []string{"tool:execute"}
	switch classification {
	case "restricted":
		perms = append(perms, "security:validated")
	case "privileged":
		perms = append(perms, "security:validated", "admin:elevated")
	case "dangerous":
		perms = append(perms, "security:validated", "admin:elevated", "approval:required")
	}
	return perms
}

func userGroups(classification string) []string {
	if classification == "safe" {
		return []string{"all"}
	}
	return []string{"administrators"}
}
