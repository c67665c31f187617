package rule

import "fmt"

// MalformedRuleError reports a shape violation in a custom rule definition.
type MalformedRuleError struct {
	// Index is the rule's position in the custom rule list.
	Index int

	// Property names the offending property.
	Property string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("Property '%s' of custom rule at index %d is incorrect.", e.Property, e.Index)
}

// DuplicateIdentifierError reports a case-insensitive name or tag collision
// between rules.
type DuplicateIdentifierError struct {
	// Index is the rule's position in the custom rule list.
	Index int

	// Identifier is the colliding string, in the casing the rule declared.
	Identifier string

	// IsTag is true when the colliding identifier is one of the rule's
	// tags rather than one of its names.
	IsTag bool
}

func (e *DuplicateIdentifierError) Error() string {
	if e.IsTag {
		return fmt.Sprintf("Tag '%s' of custom rule at index %d is already used as a name.", e.Identifier, e.Index)
	}
	return fmt.Sprintf("Name '%s' of custom rule at index %d is already used as a name or tag.", e.Identifier, e.Index)
}
