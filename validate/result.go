// Package validate checks capability manifests of either generation against
// their structural rules, producing a leveled diagnostic report.
package validate

// Level is the severity of a validation diagnostic.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
)

// String returns the conventional upper-case label for the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// Result is a single leveled validation finding tied to a file. Results are
// immutable once produced.
type Result struct {
	FilePath string
	Level    Level
	Message  string
	Details  string
}
