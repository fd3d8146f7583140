// Package classify holds the rule tables that drive capability
// classification during migration. All tables are explicit ordered lists of
// (trigger, value) pairs: iteration order is load-bearing for tie-breaking,
// so none of them may be rewritten as unordered maps. They are process-wide
// read-only configuration and are never mutated at runtime.
package classify

// SecurityLevels enumerates every valid security classification.
var SecurityLevels = []string{"safe", "restricted", "mixed", "privileged", "dangerous", "blocked"}

// ComplexityLevels enumerates every valid complexity classification.
var ComplexityLevels = []string{"simple", "moderate", "complex", "varied", "very_complex"}

// securityBuckets are tested in declared priority order against the file
// identifier; the first bucket with a matching trigger wins. Identifiers
// matching no bucket classify as safe.
var securityBuckets = []struct {
	level    string
	triggers []string
}{
	{"privileged", []string{"admin", "system", "root", "security"}},
	{"restricted", []string{"file", "database", "network"}},
	{"dangerous", []string{"delete", "remove", "execute"}},
}

type domainRule struct {
	trigger string
	domain  string
}

var domainRules = []domainRule{
	{"file", "filesystem"},
	{"http", "networking"},
	{"database", "data_storage"},
	{"system", "system_administration"},
	{"monitoring", "observability"},
	{"git", "version_control"},
	{"ai", "artificial_intelligence"},
	{"smart", "artificial_intelligence"},
}

type useCaseRule struct {
	trigger  string
	useCases []string
}

var useCaseRules = []useCaseRule{
	{"file", []string{"file_management", "data_processing"}},
	{"http", []string{"api_integration", "web_services"}},
	{"database", []string{"data_storage", "data_retrieval"}},
	{"system", []string{"system_administration", "monitoring"}},
	{"monitoring", []string{"health_monitoring", "performance_analysis"}},
	{"git", []string{"version_control", "code_management"}},
	{"ai", []string{"intelligent_processing", "automation"}},
	{"smart", []string{"intelligent_routing", "automation"}},
}

type keywordRule struct {
	trigger  string
	keywords []string
}

var keywordRules = []keywordRule{
	{"file", []string{"file", "read", "write", "filesystem"}},
	{"http", []string{"http", "request", "api", "web"}},
	{"database", []string{"database", "query", "data", "sql"}},
	{"system", []string{"system", "process", "monitor", "health"}},
	{"monitoring", []string{"monitor", "check", "health", "status"}},
	{"git", []string{"git", "version", "commit", "repository"}},
	{"smart", []string{"smart", "intelligent", "ai", "discovery"}},
}

// toolSecurity maps representative tool names to their security
// classification. Unmapped names fall back to DefaultToolSecurity.
var toolSecurity = map[string]string{
	// File operations
	"read_file":      "restricted",
	"write_file":     "privileged",
	"delete_file":    "dangerous",
	"list_directory": "safe",

	// System operations
	"execute_command": "dangerous",
	"system_info":     "safe",
	"process_list":    "restricted",

	// Network operations
	"http_request": "restricted",
	"ping":         "safe",
	"network_scan": "privileged",

	// Database operations
	"database_query": "privileged",
	"database_write": "dangerous",
}

// DefaultToolSecurity is the classification for tool names with no table
// entry.
const DefaultToolSecurity = "restricted"

type intentRule struct {
	trigger string
	intent  string
}

var intentRules = []intentRule{
	{"read", "data_retrieval"},
	{"write", "data_modification"},
	{"delete", "data_removal"},
	{"list", "data_enumeration"},
	{"create", "data_creation"},
	{"update", "data_modification"},
	{"execute", "command_execution"},
	{"process", "data_processing"},
	{"analyze", "data_analysis"},
	{"monitor", "system_monitoring"},
}

type operationRule struct {
	trigger    string
	operations []string
}

var operationRules = []operationRule{
	{"read", []string{"read", "retrieve", "get", "fetch"}},
	{"write", []string{"write", "save", "store", "put"}},
	{"delete", []string{"delete", "remove", "unlink"}},
	{"list", []string{"list", "enumerate", "scan"}},
	{"create", []string{"create", "make", "generate"}},
	{"update", []string{"update", "modify", "change"}},
	{"execute", []string{"execute", "run", "invoke"}},
	{"process", []string{"process", "transform", "convert"}},
	{"analyze", []string{"analyze", "examine", "inspect"}},
	{"monitor", []string{"monitor", "check", "watch"}},
}
