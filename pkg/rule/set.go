package rule

import "strings"

// Set is a validated, immutable collection of rules in registration order:
// built-in rules first, then custom rules.
type Set struct {
	rules        []Rule
	builtinCount int
}

// NewSet validates builtin and custom rules and indexes them as one set.
// Validation enforces, for every rule, that names is a non-empty sequence of
// non-empty strings, the description is non-empty, tags are non-empty
// strings, and the check function is present; then that every name is
// globally unique against all names and tags seen so far, and every tag
// is unused as a name, both case-insensitively.
func NewSet(builtin, custom []Rule) (*Set, error) {
	rules := make([]Rule, 0, len(builtin)+len(custom))
	rules = append(rules, builtin...)
	rules = append(rules, custom...)

	seenNames := make(map[string]bool)
	seenTags := make(map[string]bool)

	for i, r := range rules {
		customIndex := i - len(builtin)

		if prop := malformedProperty(r); prop != "" {
			return nil, &MalformedRuleError{Index: customIndex, Property: prop}
		}

		for _, name := range r.Names {
			lower := strings.ToLower(name)
			if seenNames[lower] || seenTags[lower] {
				return nil, &DuplicateIdentifierError{Index: customIndex, Identifier: name}
			}
			seenNames[lower] = true
		}
		for _, tag := range r.Tags {
			if seenNames[strings.ToLower(tag)] {
				return nil, &DuplicateIdentifierError{Index: customIndex, Identifier: tag, IsTag: true}
			}
			seenTags[strings.ToLower(tag)] = true
		}
	}

	return &Set{rules: rules, builtinCount: len(builtin)}, nil
}

// malformedProperty returns the name of the first malformed property of r,
// or "" when the rule is well formed.
func malformedProperty(r Rule) string {
	if len(r.Names) == 0 {
		return "names"
	}
	for _, name := range r.Names {
		if name == "" {
			return "names"
		}
	}
	if r.Description == "" {
		return "description"
	}
	for _, tag := range r.Tags {
		if tag == "" {
			return "tags"
		}
	}
	if r.Function == nil {
		return "function"
	}
	return ""
}

// Rules returns all rules in registration order. The returned slice must
// not be modified.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Get returns the rule matching identifier by any of its names,
// case-insensitively.
func (s *Set) Get(identifier string) (Rule, bool) {
	lower := strings.ToLower(identifier)
	for _, r := range s.rules {
		for _, name := range r.Names {
			if strings.ToLower(name) == lower {
				return r, true
			}
		}
	}
	return Rule{}, false
}
