// Package manifest defines the capability manifest data model shared by the
// migration and validation pipelines, along with YAML parsing and format
// detection.
package manifest

import "gopkg.in/yaml.v3"

const (
	// ProtocolVersion is the protocol capability tag that enhanced
	// manifests declare in mcp_capabilities.version.
	ProtocolVersion = "2025-06-18"

	// EnhancedVersion is the metadata version literal stamped on every
	// migrated manifest.
	EnhancedVersion = "3.0.0"
)

// LegacyManifest is the original, minimally structured capability file.
type LegacyManifest struct {
	Metadata LegacyMetadata `yaml:"metadata"`
	Tools    []LegacyTool   `yaml:"tools"`
}

// LegacyMetadata is the free-form metadata block of a legacy manifest.
type LegacyMetadata struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`

	// Tools is the metadata-level tool list some legacy files carry.
	// Its length, not the manifest's actual tool count, feeds complexity
	// classification.
	Tools []any `yaml:"tools"`
}

// LegacyTool is a single tool entry in a legacy manifest.
type LegacyTool struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	InputSchema yaml.Node     `yaml:"inputSchema"`
	Routing     LegacyRouting `yaml:"routing"`
	Hidden      *bool         `yaml:"hidden"`
}

// LegacyRouting describes how a legacy tool is dispatched.
type LegacyRouting struct {
	Type   string              `yaml:"type"`
	Config LegacyRoutingConfig `yaml:"config"`
}

// LegacyRoutingConfig holds the subset of routing config the migration
// reads; unknown keys are ignored.
type LegacyRoutingConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Timeout int      `yaml:"timeout"`
}

// EnhancedManifest is the upgraded manifest shape carrying classification,
// sandboxing, discovery, and monitoring metadata. Struct field order fixes
// the key order of serialized output.
type EnhancedManifest struct {
	Metadata EnhancedMetadata `yaml:"metadata"`
	Tools    []EnhancedTool   `yaml:"tools"`
}

// EnhancedMetadata is the top-level metadata block of an enhanced manifest.
type EnhancedMetadata struct {
	Name              string            `yaml:"name"`
	Description       string            `yaml:"description"`
	Version           string            `yaml:"version"`
	Author            string            `yaml:"author"`
	Classification    Classification    `yaml:"classification"`
	DiscoveryMetadata DiscoveryMetadata `yaml:"discovery_metadata"`
	MCPCapabilities   MCPCapabilities   `yaml:"mcp_capabilities"`
}

// Classification tags a capability with security, complexity, domain, and
// use-case metadata.
type Classification struct {
	SecurityLevel   string   `yaml:"security_level"`
	ComplexityLevel string   `yaml:"complexity_level"`
	Domain          string   `yaml:"domain"`
	UseCases        []string `yaml:"use_cases"`
}

// DiscoveryMetadata drives keyword and semantic discovery of a capability.
type DiscoveryMetadata struct {
	PrimaryKeywords    []string `yaml:"primary_keywords"`
	SemanticEmbeddings bool     `yaml:"semantic_embeddings"`
	LLMEnhanced        bool     `yaml:"llm_enhanced"`
	WorkflowEnabled    bool     `yaml:"workflow_enabled"`
}

// MCPCapabilities declares protocol features a manifest claims support for.
type MCPCapabilities struct {
	Version              string `yaml:"version"`
	SupportsCancellation bool   `yaml:"supports_cancellation"`
	SupportsProgress     bool   `yaml:"supports_progress"`
	SupportsSampling     bool   `yaml:"supports_sampling"`
	SupportsValidation   bool   `yaml:"supports_validation"`
	SupportsElicitation  bool   `yaml:"supports_elicitation"`
}

// EnhancedTool is a single tool entry in an enhanced manifest. All five
// sections are always populated, never partially omitted.
type EnhancedTool struct {
	Name       string         `yaml:"name"`
	Core       ToolCore       `yaml:"core"`
	Execution  ToolExecution  `yaml:"execution"`
	Discovery  ToolDiscovery  `yaml:"discovery"`
	Monitoring ToolMonitoring `yaml:"monitoring"`
	Access     ToolAccess     `yaml:"access"`
}

// ToolCore holds the tool description and its hardened input schema.
type ToolCore struct {
	Description string     `yaml:"description"`
	InputSchema *yaml.Node `yaml:"input_schema"`
}

// ToolExecution groups routing, security, and performance configuration.
type ToolExecution struct {
	Routing     EnhancedRouting   `yaml:"routing"`
	Security    SecurityConfig    `yaml:"security"`
	Performance PerformanceConfig `yaml:"performance"`
}

// EnhancedRouting wraps the legacy routing type with a primary target and an
// optional fallback.
type EnhancedRouting struct {
	Type     string         `yaml:"type"`
	Primary  RoutingTarget  `yaml:"primary"`
	Fallback *RoutingTarget `yaml:"fallback,omitempty"`
}

// RoutingTarget is one concrete dispatch target.
type RoutingTarget struct {
	Command        string   `yaml:"command"`
	Args           []string `yaml:"args"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

// SecurityConfig is the sandbox profile attached to a tool based on its
// security classification.
type SecurityConfig struct {
	Classification   string        `yaml:"classification"`
	Sandbox          SandboxConfig `yaml:"sandbox"`
	RequiresApproval bool          `yaml:"requires_approval,omitempty"`
	ApprovalWorkflow string        `yaml:"approval_workflow,omitempty"`
}

// SandboxConfig holds resource and access limits for tool execution.
type SandboxConfig struct {
	Resources   SandboxResources   `yaml:"resources"`
	Environment SandboxEnvironment `yaml:"environment"`
	Filesystem  *SandboxFilesystem `yaml:"filesystem,omitempty"`
	Network     *SandboxNetwork    `yaml:"network,omitempty"`
}

// SandboxResources caps memory, CPU, and execution time.
type SandboxResources struct {
	MaxMemoryMB         int `yaml:"max_memory_mb"`
	MaxCPUPercent       int `yaml:"max_cpu_percent"`
	MaxExecutionSeconds int `yaml:"max_execution_seconds"`
}

// SandboxEnvironment holds environment-level sandbox flags.
type SandboxEnvironment struct {
	ReadonlySystem bool `yaml:"readonly_system"`
}

// SandboxFilesystem denies filesystem access by glob pattern.
type SandboxFilesystem struct {
	DeniedPatterns []string `yaml:"denied_patterns"`
}

// SandboxNetwork gates network access.
type SandboxNetwork struct {
	Allowed bool `yaml:"allowed"`
}

// PerformanceConfig carries duration estimates and caching hints.
type PerformanceConfig struct {
	EstimatedDuration    DurationEstimate `yaml:"estimated_duration"`
	Complexity           string           `yaml:"complexity"`
	SupportsCancellation bool             `yaml:"supports_cancellation"`
	SupportsProgress     bool             `yaml:"supports_progress"`
	CacheResults         bool             `yaml:"cache_results"`
	CacheTTLSeconds      int              `yaml:"cache_ttl_seconds"`
}

// DurationEstimate is the expected duration of simple and complex
// operations, in seconds.
type DurationEstimate struct {
	SimpleOperation  int `yaml:"simple_operation"`
	ComplexOperation int `yaml:"complex_operation"`
}

// ToolDiscovery groups AI discovery metadata and per-parameter intelligence.
type ToolDiscovery struct {
	AIEnhanced            AIDiscovery `yaml:"ai_enhanced"`
	ParameterIntelligence *yaml.Node  `yaml:"parameter_intelligence"`
}

// AIDiscovery is the AI-enhanced discovery block of a tool.
type AIDiscovery struct {
	Description         string              `yaml:"description"`
	UsagePatterns       []string            `yaml:"usage_patterns"`
	SemanticContext     SemanticContext     `yaml:"semantic_context"`
	WorkflowIntegration WorkflowIntegration `yaml:"workflow_integration"`
}

// SemanticContext names the primary intent and operation verbs of a tool.
type SemanticContext struct {
	PrimaryIntent string   `yaml:"primary_intent"`
	Operations    []string `yaml:"operations"`
	DataTypes     []string `yaml:"data_types"`
}

// WorkflowIntegration records how a tool composes into workflows.
type WorkflowIntegration struct {
	TypicallyFollows   []string `yaml:"typically_follows"`
	TypicallyPrecedes  []string `yaml:"typically_precedes"`
	ChainCompatibility []string `yaml:"chain_compatibility"`
}

// ToolMonitoring groups progress tracking, cancellation, and metrics.
type ToolMonitoring struct {
	ProgressTracking ProgressTracking `yaml:"progress_tracking"`
	Cancellation     Cancellation     `yaml:"cancellation"`
	Metrics          MetricsConfig    `yaml:"metrics"`
}

// ProgressTracking configures progress reporting for long operations.
type ProgressTracking struct {
	Enabled       bool           `yaml:"enabled"`
	Granularity   string         `yaml:"granularity"`
	SubOperations []SubOperation `yaml:"sub_operations,omitempty"`
}

// SubOperation is one stage of a detailed progress breakdown.
type SubOperation struct {
	ID                  string `yaml:"id"`
	Name                string `yaml:"name"`
	EstimatedPercentage int    `yaml:"estimated_percentage"`
}

// Cancellation configures graceful cancellation of a running tool.
type Cancellation struct {
	Enabled                bool `yaml:"enabled"`
	GracefulTimeoutSeconds int  `yaml:"graceful_timeout_seconds"`
	CleanupRequired        bool `yaml:"cleanup_required"`
}

// MetricsConfig declares which execution metrics are tracked.
type MetricsConfig struct {
	TrackExecutionTime bool     `yaml:"track_execution_time"`
	TrackSuccessRate   bool     `yaml:"track_success_rate"`
	CustomMetrics      []string `yaml:"custom_metrics"`
}

// ToolAccess gates visibility, permissions, and approval for a tool.
type ToolAccess struct {
	Hidden              bool     `yaml:"hidden"`
	Enabled             bool     `yaml:"enabled"`
	RequiresPermissions []string `yaml:"requires_permissions"`
	UserGroups          []string `yaml:"user_groups"`
	ApprovalRequired    bool     `yaml:"approval_required"`
}
