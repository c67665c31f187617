// Package config implements configuration merging and per-rule resolution.
// A Config maps rule-or-tag identifiers, compared case-insensitively, to
// either a boolean (enable/disable) or an options mapping. The reserved
// "default" key sets the baseline for rules not otherwise mentioned; the
// reserved "extends" key expresses inheritance and is consumed by the
// loader, never by resolution.
package config

import "strings"

// Reserved keys.
const (
	// DefaultKey sets the baseline enablement for all unmentioned rules.
	DefaultKey = "default"

	// ExtendsKey links a configuration to its ancestor. It is stripped by
	// Merge.
	ExtendsKey = "extends"
)

// Config is an already-decoded configuration mapping. Values are bool or
// map[string]any. Keys are stored lowercased; original casing of user input
// never affects behavior.
type Config map[string]any

// Merge cascades a chain of mappings, ancestors first, a child key
// overriding its ancestors' one level deep. Option sub-mappings are not
// deep-merged. The linkage key is stripped from the result.
func Merge(chain ...Config) Config {
	merged := make(Config)
	for _, cfg := range chain {
		for key, value := range cfg {
			lower := strings.ToLower(key)
			if lower == ExtendsKey {
				continue
			}
			merged[lower] = value
		}
	}
	return merged
}

// Resolve determines whether a rule is enabled and with which options.
// Precedence: explicit rule-name entry, then alias entries in name order,
// then any tag entry in the rule's tag order, then the "default" entry,
// then enabled.
func Resolve(names, tags []string, cfg Config) (bool, map[string]any) {
	for _, name := range names {
		if value, ok := lookup(cfg, name); ok {
			return interpret(value)
		}
	}
	for _, tag := range tags {
		if value, ok := lookup(cfg, tag); ok {
			return interpret(value)
		}
	}
	if value, ok := lookup(cfg, DefaultKey); ok {
		enabled, _ := interpret(value)
		return enabled, map[string]any{}
	}
	return true, map[string]any{}
}

func lookup(cfg Config, key string) (any, bool) {
	lower := strings.ToLower(key)
	if value, ok := cfg[lower]; ok {
		return value, true
	}
	// Tolerate mappings that did not pass through Merge.
	for k, value := range cfg {
		if strings.ToLower(k) == lower {
			return value, true
		}
	}
	return nil, false
}

// interpret converts a config entry into (enabled, options). A boolean
// toggles the rule; a mapping enables it with options; anything else is
// treated as enabled with no options.
func interpret(value any) (bool, map[string]any) {
	switch v := value.(type) {
	case bool:
		return v, map[string]any{}
	case map[string]any:
		return true, v
	default:
		return true, map[string]any{}
	}
}
