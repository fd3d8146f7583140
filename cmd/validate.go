package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/capsmith/capsmith/internal/term"
	"github.com/capsmith/capsmith/validate"
)

var strict bool

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate capability files of either generation",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	v := validate.New()
	info, err := os.Stat(path)
	var results []validate.Result
	switch {
	case err != nil:
		results = v.ValidateFile(path)
	case info.IsDir():
		results = v.ValidateDirectory(path)
	default:
		results = v.ValidateFile(path)
	}

	summary := validate.Summarize(results)
	printValidationReport(results, summary)

	switch summary.Verdict(strict) {
	case validate.Fail:
		if summary.Errors == 0 {
			return fmt.Errorf("validation failed: %d warning(s) treated as errors in strict mode", summary.Warnings)
		}
		return fmt.Errorf("validation failed: %d error(s)", summary.Errors)
	default:
		return nil
	}
}

func printValidationReport(results []validate.Result, summary validate.Summary) {
	styles := term.NewStyleSet()

	fmt.Println(styles.Bold.Render("Validation results"))
	fmt.Printf("  Errors:   %d\n", summary.Errors)
	fmt.Printf("  Warnings: %d\n", summary.Warnings)
	fmt.Printf("  Info:     %d\n\n", summary.Infos)

	for _, r := range results {
		style := levelStyle(styles, r.Level)
		fmt.Printf("%s %s\n", style.Render("["+r.Level.String()+"]"), r.FilePath)
		fmt.Printf("  %s\n", r.Message)
		if r.Details != "" {
			fmt.Printf("  Details: %s\n", styles.Dim.Render(r.Details))
		}
	}

	fmt.Println()
	switch {
	case summary.Errors > 0:
		fmt.Println(styles.Error.Render(fmt.Sprintf("VALIDATION FAILED: %d errors found", summary.Errors)))
	case summary.Warnings > 0:
		fmt.Println(styles.Warning.Render(fmt.Sprintf("VALIDATION PASSED WITH WARNINGS: %d warnings", summary.Warnings)))
	default:
		fmt.Println(styles.Success.Render("VALIDATION PASSED: All files are valid"))
	}
}

func levelStyle(styles *term.StyleSet, level validate.Level) lipgloss.Style {
	switch level {
	case validate.LevelError:
		return styles.Error
	case validate.LevelWarning:
		return styles.Warning
	case validate.LevelSuccess:
		return styles.Success
	default:
		return styles.Info
	}
}
