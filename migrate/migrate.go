package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/capsmith/capsmith/manifest"
)

// ErrInputNotFound reports a missing input root. It is the only condition
// that aborts a batch run before processing begins.
var ErrInputNotFound = errors.New("input path does not exist")

// manifestGlob matches capability files under a root, recursively.
const manifestGlob = "**/*.{yaml,yml}"

// Options configures a Migrator.
type Options struct {
	// Backup writes a .backup copy of the original before an in-place
	// overwrite.
	Backup bool
	// Logger receives structured per-file events. Defaults to a no-op
	// logger.
	Logger *zap.Logger
	// Now supplies provenance timestamps; defaults to time.Now.
	Now func() time.Time
}

// Stats records the outcome of one migration run. It is owned by that run
// and read once the run finishes.
type Stats struct {
	FilesProcessed int
	FilesMigrated  int
	FilesSkipped   int
	Errors         []string
}

// Migrator drives single-file and batch migration of legacy capability
// files to the enhanced format.
type Migrator struct {
	opts  Options
	log   *zap.Logger
	runID string
	stats Stats
}

// New creates a Migrator for a single run.
func New(opts Options) *Migrator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Migrator{
		opts:  opts,
		log:   log,
		runID: uuid.NewString(),
	}
}

// RunID identifies this migration run in logs and provenance headers.
func (m *Migrator) RunID() string { return m.runID }

// Stats returns the statistics accumulated so far.
func (m *Migrator) Stats() Stats { return m.stats }

// MigrateFile migrates one legacy file. An empty outputPath migrates in
// place, honoring the backup option; otherwise the result is written to
// outputPath and the original is left untouched.
func (m *Migrator) MigrateFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	inPlace := outputPath == "" || outputPath == inputPath
	if inPlace {
		outputPath = inputPath
		if m.opts.Backup {
			backupPath := inputPath + ".backup"
			if err := os.WriteFile(backupPath, data, 0o644); err != nil {
				return fmt.Errorf("writing backup %s: %w", backupPath, err)
			}
			m.log.Debug("backup written", zap.String("file", backupPath), zap.String("run_id", m.runID))
		}
	}

	legacy, err := manifest.ParseLegacy(data)
	if err != nil {
		return err
	}

	stem := fileStem(inputPath)
	enhanced := &manifest.EnhancedManifest{
		Metadata: EnhanceMetadata(legacy.Metadata, stem),
		Tools:    make([]manifest.EnhancedTool, 0, len(legacy.Tools)),
	}
	for _, tool := range legacy.Tools {
		enhanced.Tools = append(enhanced.Tools, EnhanceTool(tool))
	}

	ser := &Serializer{Now: m.opts.Now, RunID: m.runID}
	out, err := ser.Render(enhanced)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	m.stats.FilesProcessed++
	m.stats.FilesMigrated++
	m.log.Info("file migrated",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("tools", len(enhanced.Tools)),
		zap.String("run_id", m.runID),
	)
	return nil
}

// MigrateDirectory migrates every capability file under inputDir, in
// enumeration order. Already-enhanced files are skipped and counted. An
// empty outputDir migrates in place; otherwise the input's relative
// directory structure is mirrored under outputDir. A failure on one file
// is recorded and the run continues with the next file.
func (m *Migrator) MigrateDirectory(inputDir, outputDir string) (Stats, error) {
	if _, err := os.Stat(inputDir); err != nil {
		if os.IsNotExist(err) {
			return m.stats, fmt.Errorf("%w: %s", ErrInputNotFound, inputDir)
		}
		return m.stats, fmt.Errorf("stat %s: %w", inputDir, err)
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return m.stats, fmt.Errorf("creating output directory: %w", err)
		}
	}

	files, err := doublestar.Glob(os.DirFS(inputDir), manifestGlob)
	if err != nil {
		return m.stats, fmt.Errorf("enumerating %s: %w", inputDir, err)
	}

	m.log.Info("batch migration started",
		zap.String("input", inputDir),
		zap.String("output", outputDir),
		zap.Int("files", len(files)),
		zap.String("run_id", m.runID),
	)

	for _, rel := range files {
		inputPath := filepath.Join(inputDir, filepath.FromSlash(rel))

		if m.isAlreadyEnhanced(inputPath) {
			m.stats.FilesSkipped++
			m.log.Info("already enhanced, skipping",
				zap.String("file", inputPath), zap.String("run_id", m.runID))
			continue
		}

		outputPath := ""
		if outputDir != "" {
			outputPath = filepath.Join(outputDir, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				m.recordError(inputPath, err)
				continue
			}
		}

		if err := m.MigrateFile(inputPath, outputPath); err != nil {
			m.recordError(inputPath, err)
		}
	}

	return m.stats, nil
}

// isAlreadyEnhanced is fail-open: any read or parse error classifies the
// file as legacy so that migration gets a chance to surface the real error.
func (m *Migrator) isAlreadyEnhanced(path string) bool {
	doc, err := manifest.LoadDocument(path)
	if err != nil {
		return false
	}
	return manifest.IsEnhanced(doc)
}

func (m *Migrator) recordError(path string, err error) {
	msg := fmt.Sprintf("Failed to migrate %s: %v", path, err)
	m.stats.Errors = append(m.stats.Errors, msg)
	m.log.Error("migration failed", zap.String("file", path), zap.Error(err), zap.String("run_id", m.runID))
}

// SuccessRate returns the percentage of processed files that migrated.
func (s Stats) SuccessRate() float64 {
	processed := s.FilesProcessed
	if processed == 0 {
		processed = 1
	}
	return float64(s.FilesMigrated) / float64(processed) * 100
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
