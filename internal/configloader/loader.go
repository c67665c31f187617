// Package configloader reads configuration files and resolves their
// inheritance chain into one merged mapping. Decoding is format-agnostic;
// YAML, JSON and TOML are chosen by file extension. The engine itself only
// ever sees the already-decoded mapping.
package configloader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/marklint/pkg/config"
)

// maxExtendsDepth bounds the inheritance chain; deeper chains are treated
// as cycles.
const maxExtendsDepth = 10

// Load reads and decodes one config file, then resolves its extends chain.
// Ancestors merge first, so the named file's keys win.
func Load(path string) (config.Config, error) {
	return loadChain(path, 0)
}

func loadChain(path string, depth int) (config.Config, error) {
	if depth >= maxExtendsDepth {
		return nil, fmt.Errorf("config %s: extends chain too deep (max %d)", path, maxExtendsDepth)
	}

	raw, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	parent := extendsPath(raw, path)
	if parent == "" {
		return config.Merge(nil, raw), nil
	}

	base, err := loadChain(parent, depth+1)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config.Merge(base, raw), nil
}

// extendsPath reads the extends key case-insensitively and resolves it
// relative to the referencing file.
func extendsPath(raw config.Config, from string) string {
	for key, value := range raw {
		if !strings.EqualFold(key, config.ExtendsKey) {
			continue
		}
		if target, ok := value.(string); ok && target != "" {
			if filepath.IsAbs(target) {
				return target
			}
			return filepath.Join(filepath.Dir(from), target)
		}
	}
	return ""
}

func decodeFile(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("decode %s: unsupported extension", path)
	}

	return normalize(raw), nil
}

// normalize converts decoder-specific nested maps into plain
// map[string]any values so option lookups behave identically across
// formats.
func normalize(raw map[string]any) config.Config {
	out := make(config.Config, len(raw))
	for key, value := range raw {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		nested := make(map[string]any, len(v))
		for key, inner := range v {
			nested[key] = normalizeValue(inner)
		}
		return nested
	case map[any]any:
		nested := make(map[string]any, len(v))
		for key, inner := range v {
			nested[fmt.Sprint(key)] = normalizeValue(inner)
		}
		return nested
	case []any:
		list := make([]any, len(v))
		for i, inner := range v {
			list[i] = normalizeValue(inner)
		}
		return list
	default:
		return value
	}
}
