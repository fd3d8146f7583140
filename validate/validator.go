package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/capsmith/capsmith/manifest"
)

// manifestGlob matches capability files under a root, recursively.
const manifestGlob = "**/*.{yaml,yml}"

// Validator runs the two-phase manifest check: YAML syntax first, then the
// structural rules of whichever format the file turns out to be. All
// diagnostics for a run accumulate in order; validation of one file never
// stops because another failed.
type Validator struct {
	results []Result
}

// New creates a Validator for a single run.
func New() *Validator {
	return &Validator{}
}

// Results returns all diagnostics accumulated so far, in production order.
func (v *Validator) Results() []Result {
	return v.results
}

// ValidateDirectory validates every capability file under dir. A missing
// root yields a single ERROR diagnostic; an empty directory a WARNING.
func (v *Validator) ValidateDirectory(dir string) []Result {
	if _, err := os.Stat(dir); err != nil {
		v.add(dir, LevelError, fmt.Sprintf("Directory does not exist: %s", dir), "")
		return v.results
	}

	files, err := doublestar.Glob(os.DirFS(dir), manifestGlob)
	if err != nil {
		v.add(dir, LevelError, "Failed to enumerate directory", err.Error())
		return v.results
	}
	if len(files) == 0 {
		v.add(dir, LevelWarning, "No YAML files found in directory", "")
		return v.results
	}

	v.add(dir, LevelInfo, fmt.Sprintf("Found %d YAML files to validate", len(files)), "")
	for _, rel := range files {
		v.ValidateFile(filepath.Join(dir, filepath.FromSlash(rel)))
	}
	return v.results
}

// ValidateFile validates a single file. Phase 1 parses the raw text; a
// parse failure yields one ERROR and skips the structural phase for this
// file only. Phase 2 branches on the detected format.
func (v *Validator) ValidateFile(path string) []Result {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			v.add(path, LevelError, fmt.Sprintf("File does not exist: %s", path), "")
		} else {
			v.add(path, LevelError, "Failed to read file", err.Error())
		}
		return v.results
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		v.add(path, LevelError, "Invalid YAML syntax", err.Error())
		return v.results
	}
	doc, _ := raw.(map[string]any)

	if manifest.IsEnhanced(doc) {
		v.add(path, LevelInfo, fmt.Sprintf("Detected format: Enhanced MCP %s", manifest.ProtocolVersion), "")
		v.validateEnhanced(path, doc)
	} else {
		v.add(path, LevelInfo, "Detected format: Legacy", "")
		v.validateLegacy(path, doc)
	}
	return v.results
}

func (v *Validator) add(path string, level Level, message, details string) {
	v.results = append(v.results, Result{
		FilePath: path,
		Level:    level,
		Message:  message,
		Details:  details,
	})
}
