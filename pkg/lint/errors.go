package lint

import "fmt"

// DiagnosticError reports a malformed diagnostic emitted by a rule. Path
// identifies the offending property, e.g. "fixInfo.editColumn".
type DiagnosticError struct {
	Path string
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("Property '%s' of onError parameter is incorrect.", e.Path)
}

// RuleFaultError reports a check function that failed at run time, either by
// returning an error, panicking, or emitting an invalid diagnostic.
type RuleFaultError struct {
	// RuleName is the canonical name of the offending rule.
	RuleName string

	// Err is the underlying failure.
	Err error
}

func (e *RuleFaultError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.RuleName, e.Err)
}

func (e *RuleFaultError) Unwrap() error {
	return e.Err
}
