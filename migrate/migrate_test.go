package migrate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/capsmith/capsmith/manifest"
)

const legacyFileYAML = `metadata:
  name: File Tools
  description: Legacy file operations
tools:
  - name: read_file
    description: Reads a file
    inputSchema:
      type: object
      properties:
        path:
          type: string
    routing:
      type: subprocess
      config:
        command: cat
        args: ["{path}"]
    hidden: true
`

const enhancedStubYAML = `metadata:
  name: Already Done
  description: d
  version: "3.0.0"
  author: team
  classification:
    security_level: safe
tools: []
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestMigrateFile_InPlaceWithBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file_ops.yaml")
	writeFile(t, path, legacyFileYAML)

	m := New(Options{Backup: true})
	if err := m.MigrateFile(path, ""); err != nil {
		t.Fatalf("MigrateFile error: %v", err)
	}

	backup, err := os.ReadFile(path + ".backup")
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if string(backup) != legacyFileYAML {
		t.Error("backup does not hold the original content")
	}

	doc, err := manifest.LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument error: %v", err)
	}
	if !manifest.IsEnhanced(doc) {
		t.Error("migrated file is not detected as enhanced")
	}

	stats := m.Stats()
	if stats.FilesProcessed != 1 || stats.FilesMigrated != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestMigrateFile_SeparateOutputLeavesOriginal(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "file_ops.yaml")
	out := filepath.Join(dir, "out.yaml")
	writeFile(t, in, legacyFileYAML)

	m := New(Options{Backup: true})
	if err := m.MigrateFile(in, out); err != nil {
		t.Fatalf("MigrateFile error: %v", err)
	}

	original, err := os.ReadFile(in)
	if err != nil {
		t.Fatalf("read original: %v", err)
	}
	if string(original) != legacyFileYAML {
		t.Error("original was modified despite a separate output path")
	}
	if _, err := os.Stat(in + ".backup"); !os.IsNotExist(err) {
		t.Error("backup must not be written when output is separate")
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestMigrateFile_MissingInput(t *testing.T) {
	m := New(Options{})
	err := m.MigrateFile(filepath.Join(t.TempDir(), "nope.yaml"), "")
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("err = %v, want ErrInputNotFound", err)
	}
}

func TestMigrateDirectory_Batch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a_file.yaml"), legacyFileYAML)
	writeFile(t, filepath.Join(dir, "b_file.yaml"), legacyFileYAML)
	writeFile(t, filepath.Join(dir, "core", "c_file.yml"), legacyFileYAML)
	writeFile(t, filepath.Join(dir, "done.yaml"), enhancedStubYAML)

	m := New(Options{})
	stats, err := m.MigrateDirectory(dir, "")
	if err != nil {
		t.Fatalf("MigrateDirectory error: %v", err)
	}

	if stats.FilesProcessed != 3 {
		t.Errorf("FilesProcessed = %d, want 3", stats.FilesProcessed)
	}
	if stats.FilesMigrated != 3 {
		t.Errorf("FilesMigrated = %d, want 3", stats.FilesMigrated)
	}
	if stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", stats.FilesSkipped)
	}
	if len(stats.Errors) != 0 {
		t.Errorf("Errors = %v", stats.Errors)
	}
}

func TestMigrateDirectory_MirrorsStructure(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "core", "file_ops.yaml"), legacyFileYAML)

	m := New(Options{})
	if _, err := m.MigrateDirectory(in, out); err != nil {
		t.Fatalf("MigrateDirectory error: %v", err)
	}

	migrated := filepath.Join(out, "core", "file_ops.yaml")
	if _, err := os.Stat(migrated); err != nil {
		t.Fatalf("mirrored output missing: %v", err)
	}

	original, err := os.ReadFile(filepath.Join(in, "core", "file_ops.yaml"))
	if err != nil {
		t.Fatalf("read original: %v", err)
	}
	if string(original) != legacyFileYAML {
		t.Error("input tree was modified during a mirrored run")
	}
}

func TestMigrateDirectory_ErrorIsolation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "tools: [unclosed\n")
	writeFile(t, filepath.Join(dir, "good.yaml"), legacyFileYAML)

	m := New(Options{})
	stats, err := m.MigrateDirectory(dir, "")
	if err != nil {
		t.Fatalf("a single bad file must not abort the run: %v", err)
	}

	if stats.FilesMigrated != 1 {
		t.Errorf("FilesMigrated = %d, want 1", stats.FilesMigrated)
	}
	if len(stats.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", stats.Errors)
	}
	if !strings.Contains(stats.Errors[0], "bad.yaml") {
		t.Errorf("error does not name the failing file: %s", stats.Errors[0])
	}
}

func TestMigrateDirectory_MissingRoot(t *testing.T) {
	m := New(Options{})
	_, err := m.MigrateDirectory(filepath.Join(t.TempDir(), "missing"), "")
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("err = %v, want ErrInputNotFound", err)
	}
}

// Re-running migration over an already migrated tree must skip every file:
// the run is idempotent apart from counters.
func TestMigrateDirectory_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a_file.yaml"), legacyFileYAML)

	first := New(Options{})
	if _, err := first.MigrateDirectory(dir, ""); err != nil {
		t.Fatalf("first run: %v", err)
	}

	second := New(Options{})
	stats, err := second.MigrateDirectory(dir, "")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if stats.FilesSkipped != 1 || stats.FilesMigrated != 0 {
		t.Errorf("second run stats = %+v, want 1 skipped and 0 migrated", stats)
	}
}

func TestStats_SuccessRate(t *testing.T) {
	if got := (Stats{}).SuccessRate(); got != 0 {
		t.Errorf("empty run rate = %v, want 0", got)
	}
	if got := (Stats{FilesProcessed: 4, FilesMigrated: 3}).SuccessRate(); got != 75 {
		t.Errorf("rate = %v, want 75", got)
	}
}
