package fdcsp

import "fmt"

// ModelMisuseError reports a programmer error: constructing or mutating a
// Model or Domain outside the contract in spec.md §7 (adding after
// Finalize, finalizing twice, searching before Finalize, or a malformed
// domain). These are never expected at runtime against a correctly built
// model, so the model and assignment APIs raise them via panic rather than
// a returned error; a caller that wants to recover can do so with a type
// assertion against *ModelMisuseError.
type ModelMisuseError struct {
	Msg string
}

func (e *ModelMisuseError) Error() string {
	return fmt.Sprintf("fdcsp: model misuse: %s", e.Msg)
}

func misuse(format string, args ...interface{}) {
	panic(&ModelMisuseError{Msg: fmt.Sprintf(format, args...)})
}
