// Package migrate upgrades legacy capability manifests to the enhanced
// format: classification, security sandboxing, discovery metadata, and
// monitoring configuration, driven per file by a Migrator.
package migrate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/capsmith/capsmith/classify"
	"github.com/capsmith/capsmith/manifest"
)

const defaultAuthor = "MCP 2025 Enhanced Team"

// EnhanceMetadata builds the enhanced top-level metadata block from legacy
// metadata and the file identifier. It is a pure function; timestamps are
// added by the serializer, never here.
func EnhanceMetadata(meta manifest.LegacyMetadata, stem string) manifest.EnhancedMetadata {
	name := meta.Name
	if name == "" {
		name = "Enhanced " + titleCase(strings.ReplaceAll(stem, "_", " "))
	}
	description := meta.Description
	if description == "" {
		description = fmt.Sprintf("Enhanced %s with MCP %s compliance", stem, manifest.ProtocolVersion)
	}
	author := meta.Author
	if author == "" {
		author = defaultAuthor
	}

	return manifest.EnhancedMetadata{
		Name:        "Enhanced " + name,
		Description: fmt.Sprintf("%s - MCP %s compliant with AI enhancement", description, manifest.ProtocolVersion),
		Version:     manifest.EnhancedVersion,
		Author:      author,
		Classification: classify.Capability(stem, meta),
		DiscoveryMetadata: manifest.DiscoveryMetadata{
			PrimaryKeywords:    classify.Keywords(stem, meta),
			SemanticEmbeddings: true,
			LLMEnhanced:        true,
			WorkflowEnabled:    true,
		},
		MCPCapabilities: manifest.MCPCapabilities{
			Version:              manifest.ProtocolVersion,
			SupportsCancellation: true,
			SupportsProgress:     true,
			SupportsSampling:     false,
			SupportsValidation:   true,
			SupportsElicitation:  false,
		},
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
