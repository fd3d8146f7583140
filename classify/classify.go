package classify

import (
	"strings"

	"github.com/capsmith/capsmith/manifest"
)

// Capability classifies a manifest from its file identifier (base name
// without extension, matched case-insensitively) and its legacy metadata.
// It is a pure function: identical inputs always yield identical output.
func Capability(stem string, meta manifest.LegacyMetadata) manifest.Classification {
	return manifest.Classification{
		SecurityLevel:   securityLevel(stem),
		ComplexityLevel: complexityLevel(len(meta.Tools)),
		Domain:          domain(stem),
		UseCases:        useCases(stem),
	}
}

func securityLevel(stem string) string {
	id := strings.ToLower(stem)
	for _, bucket := range securityBuckets {
		for _, trigger := range bucket.triggers {
			if strings.Contains(id, trigger) {
				return bucket.level
			}
		}
	}
	return "safe"
}

// complexityLevel derives complexity from the tool count declared in the
// legacy metadata block, not from the manifest's actual tool sequence.
func complexityLevel(toolCount int) string {
	switch {
	case toolCount > 10:
		return "very_complex"
	case toolCount > 5:
		return "complex"
	case toolCount > 2:
		return "moderate"
	default:
		return "simple"
	}
}

func domain(stem string) string {
	id := strings.ToLower(stem)
	for _, r := range domainRules {
		if strings.Contains(id, r.trigger) {
			return r.domain
		}
	}
	return "general"
}

func useCases(stem string) []string {
	id := strings.ToLower(stem)
	for _, r := range useCaseRules {
		if strings.Contains(id, r.trigger) {
			return append([]string(nil), r.useCases...)
		}
	}
	return []string{"general_purpose"}
}

// Keywords generates discovery keywords for a manifest: the identifier with
// underscores spaced out, the first matching expansion from the keyword
// table, and any tags already present in the legacy metadata. The result is
// deduplicated with first-appearance order kept, so output is deterministic.
func Keywords(stem string, meta manifest.LegacyMetadata) []string {
	keywords := []string{strings.ReplaceAll(stem, "_", " ")}

	id := strings.ToLower(stem)
	for _, r := range keywordRules {
		if strings.Contains(id, r.trigger) {
			keywords = append(keywords, r.keywords...)
			break
		}
	}

	keywords = append(keywords, meta.Tags...)

	seen := make(map[string]bool, len(keywords))
	out := keywords[:0]
	for _, k := range keywords {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// ToolSecurity resolves the security classification for a single tool name
// via the static lookup table.
func ToolSecurity(name string) string {
	if level, ok := toolSecurity[name]; ok {
		return level
	}
	return DefaultToolSecurity
}

// Intent derives a tool's primary intent from its name; the first matching
// trigger wins.
func Intent(name string) string {
	id := strings.ToLower(name)
	for _, r := range intentRules {
		if strings.Contains(id, r.trigger) {
			return r.intent
		}
	}
	return "general_operation"
}

// Operations derives a tool's operation-verb list from its name; only the
// first matching trigger contributes.
func Operations(name string) []string {
	id := strings.ToLower(name)
	for _, r := range operationRules {
		if strings.Contains(id, r.trigger) {
			return append([]string(nil), r.operations...)
		}
	}
	return []string{"operate"}
}

// ValidSecurityLevel reports membership in the security level enumeration.
func ValidSecurityLevel(level string) bool {
	for _, l := range SecurityLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ValidComplexityLevel reports membership in the complexity level
// enumeration.
func ValidComplexityLevel(level string) bool {
	for _, l := range ComplexityLevels {
		if l == level {
			return true
		}
	}
	return false
}
