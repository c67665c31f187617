package lint

import (
	"github.com/yaklabco/marklint/pkg/doc"
	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/rule"
)

// validateDiagnostic bounds-checks a reported diagnostic against the
// document. It returns a DiagnosticError naming the first invalid property.
func validateDiagnostic(diag rule.Diagnostic, d *doc.Document) error {
	if diag.LineNumber < 1 || diag.LineNumber > d.LineCount() {
		return &DiagnosticError{Path: "lineNumber"}
	}

	if diag.Range != nil {
		if err := validateRange(diag.Range, d.Line(diag.LineNumber)); err != nil {
			return err
		}
	}

	if diag.FixInfo != nil {
		if err := validateFixInfo(*diag.FixInfo, diag.LineNumber, d); err != nil {
			return err
		}
	}

	return nil
}

// validateRange checks a (column, length) pair against its line.
func validateRange(r []int, line string) error {
	if len(r) != 2 {
		return &DiagnosticError{Path: "range"}
	}
	column, length := r[0], r[1]
	if column < 1 || length < 1 || column+length-1 > len(line) {
		return &DiagnosticError{Path: "range"}
	}
	return nil
}

// validateFixInfo checks a fix description's own line and column bounds.
func validateFixInfo(info fix.Info, diagLine int, d *doc.Document) error {
	targetLine := diagLine
	if info.LineNumber != 0 {
		if info.LineNumber < 1 || info.LineNumber > d.LineCount() {
			return &DiagnosticError{Path: "fixInfo.lineNumber"}
		}
		targetLine = info.LineNumber
	}

	line := d.Line(targetLine)

	editColumn := 1
	if info.EditColumn != 0 {
		if info.EditColumn < 1 || info.EditColumn > len(line)+1 {
			return &DiagnosticError{Path: "fixInfo.editColumn"}
		}
		editColumn = info.EditColumn
	}

	if info.DeleteCount < fix.DeleteLine || info.DeleteCount > len(line)-editColumn+1 {
		return &DiagnosticError{Path: "fixInfo.deleteCount"}
	}

	return nil
}
