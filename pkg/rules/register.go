package rules

import "github.com/yaklabco/marklint/pkg/rule"

// Builtin returns the built-in rule pack in registration order. The order
// is stable because it determines finding order for same-line diagnostics.
func Builtin() []rule.Rule {
	return []rule.Rule{
		// Whitespace
		NoTrailingSpaces(), // ML009
		NoHardTabs(),       // ML010

		// Blank lines
		NoMultipleBlanks(),      // ML012
		SingleTrailingNewline(), // ML047

		// Links
		NoReversedLinks(), // ML011
		NoBareURLs(),      // ML034

		// Code
		NoSpaceInCode(),      // ML038
		FencedCodeLanguage(), // ML040
	}
}
