package recipes

import "fmt"

type Field string

const (
	FieldTeaser   Field = "teaser"
	FieldFullText Field = "full_text"
)

type Reason string

const (
	ReasonTooLong Reason = "too_long"
	ReasonEmpty   Reason = "empty"
)

// ValidationError rejects operator input without touching the draft; the
// operator is re-prompted for the same step. Length carries the exact
// offending rune count so it can be echoed back as "N/200".
type ValidationError struct {
	Field  Field
	Reason Reason
	Length int
}

func (e *ValidationError) Error() string {
	if e.Reason == ReasonTooLong {
		return fmt.Sprintf("%s too long: %d/%d", e.Field, e.Length, MaxTextLen)
	}
	return fmt.Sprintf("%s is %s", e.Field, e.Reason)
}

// StateError means the caller invoked a transition the current stage does
// not allow. The surrounding menu should make this unreachable, so it is
// reported loudly rather than swallowed.
type StateError struct {
	Expected Stage
	Actual   Stage
}

func (e *StateError) Error() string {
	return fmt.Sprintf("draft in stage %q, operation requires %q", e.Actual, e.Expected)
}
