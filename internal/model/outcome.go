package model

// Outcome represents the kind of result a single check produced.
// Every check records exactly one outcome per file: a pass, an advisory
// warning, or an error that fails the file.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output when needed.
type Outcome int

const (
	// OutcomePass indicates the check was fully satisfied.
	OutcomePass Outcome = iota

	// OutcomeWarn indicates a non-fatal issue. Warnings are advisory only
	// and never affect whether a file passes validation.
	OutcomeWarn

	// OutcomeError indicates a fatal issue. A single error fails the file.
	OutcomeError
)

// String returns a human-readable representation of the outcome kind.
func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "PASS"
	case OutcomeWarn:
		return "WARN"
	case OutcomeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
