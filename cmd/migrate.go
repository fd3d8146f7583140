package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/capsmith/capsmith/internal/term"
	"github.com/capsmith/capsmith/migrate"
)

var (
	migrateOutput string
	migrateBackup bool
	migrateFile   string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [path]",
	Short: "Migrate legacy capability files to the enhanced format",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateOutput, "output", "o", "", "output directory (default: migrate in place)")
	migrateCmd.Flags().BoolVar(&migrateBackup, "backup", false, "write a .backup copy before overwriting in place")
	migrateCmd.Flags().StringVar(&migrateFile, "file", "", "migrate a single file")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if migrateFile == "" && len(args) == 0 {
		return fmt.Errorf("provide a path or --file")
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer l.Sync() //nolint:errcheck
		logger = l
	}

	m := migrate.New(migrate.Options{
		Backup: migrateBackup,
		Logger: logger,
	})

	switch {
	case migrateFile != "":
		outPath := ""
		if migrateOutput != "" {
			if err := os.MkdirAll(migrateOutput, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			outPath = filepath.Join(migrateOutput, filepath.Base(migrateFile))
		}
		if err := m.MigrateFile(migrateFile, outPath); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	default:
		info, err := os.Stat(args[0])
		if err != nil {
			return fmt.Errorf("migration failed: %w", migrate.ErrInputNotFound)
		}
		if info.IsDir() {
			if _, err := m.MigrateDirectory(args[0], migrateOutput); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		} else {
			outPath := ""
			if migrateOutput != "" {
				if err := os.MkdirAll(migrateOutput, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
				outPath = filepath.Join(migrateOutput, filepath.Base(args[0]))
			}
			if err := m.MigrateFile(args[0], outPath); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		}
	}

	printMigrationSummary(m.Stats())
	return nil
}

func printMigrationSummary(stats migrate.Stats) {
	styles := term.NewStyleSet()

	fmt.Println(styles.Bold.Render("Migration summary"))
	fmt.Printf("  Files processed: %d\n", stats.FilesProcessed)
	fmt.Printf("  Files migrated:  %d\n", stats.FilesMigrated)
	fmt.Printf("  Files skipped:   %d\n", stats.FilesSkipped)
	fmt.Printf("  Errors:          %d\n", len(stats.Errors))

	if len(stats.Errors) > 0 {
		fmt.Println()
		for _, e := range stats.Errors {
			fmt.Println("  " + styles.Error.Render(e))
		}
	}

	fmt.Printf("\n  Success rate: %s\n", styles.Success.Render(fmt.Sprintf("%.1f%%", stats.SuccessRate())))
}
