package validate

// Verdict is the top-level outcome of a validation run.
type Verdict int

const (
	// Pass means no diagnostics above INFO were produced.
	Pass Verdict = iota
	// PassWithWarnings means warnings were produced but no errors.
	PassWithWarnings
	// Fail means at least one ERROR diagnostic was produced, or strict
	// mode promoted warnings to a failure.
	Fail
)

// Summary aggregates diagnostics by level for one validation run.
type Summary struct {
	Errors    int
	Warnings  int
	Infos     int
	Successes int
}

// Summarize counts results by level.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Level {
		case LevelError:
			s.Errors++
		case LevelWarning:
			s.Warnings++
		case LevelInfo:
			s.Infos++
		case LevelSuccess:
			s.Successes++
		}
	}
	return s
}

// Verdict derives the pass/fail outcome. In strict mode a warning-only run
// fails as well.
func (s Summary) Verdict(strict bool) Verdict {
	switch {
	case s.Errors > 0:
		return Fail
	case s.Warnings > 0 && strict:
		return Fail
	case s.Warnings > 0:
		return PassWithWarnings
	default:
		return Pass
	}
}
