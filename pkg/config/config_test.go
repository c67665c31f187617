package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chain []Config
		want  Config
	}{
		{
			name:  "empty chain",
			chain: nil,
			want:  Config{},
		},
		{
			name:  "single mapping lowercases keys",
			chain: []Config{{"ML001": false, "Default": true}},
			want:  Config{"ml001": false, "default": true},
		},
		{
			name: "child overrides ancestor",
			chain: []Config{
				{"ml001": true, "ml002": true},
				{"ml001": false},
			},
			want: Config{"ml001": false, "ml002": true},
		},
		{
			name: "case insensitive override",
			chain: []Config{
				{"ML001": true},
				{"ml001": false},
			},
			want: Config{"ml001": false},
		},
		{
			name: "option mapping replaced not deep merged",
			chain: []Config{
				{"ml013": map[string]any{"line_length": 80, "code_blocks": false}},
				{"ml013": map[string]any{"line_length": 100}},
			},
			want: Config{"ml013": map[string]any{"line_length": 100}},
		},
		{
			name: "extends key stripped",
			chain: []Config{
				{"extends": "base.yaml", "ml001": true},
				{"Extends": "other.yaml"},
			},
			want: Config{"ml001": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Merge(tt.chain...))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	names := []string{"ML009", "no-trailing-spaces"}
	tags := []string{"whitespace"}

	tests := []struct {
		name        string
		cfg         Config
		wantEnabled bool
		wantOptions map[string]any
	}{
		{
			name:        "nothing configured defaults to enabled",
			cfg:         Config{},
			wantEnabled: true,
			wantOptions: map[string]any{},
		},
		{
			name:        "rule name wins over tag",
			cfg:         Config{"ml009": true, "whitespace": false},
			wantEnabled: true,
			wantOptions: map[string]any{},
		},
		{
			name:        "alias wins over tag",
			cfg:         Config{"no-trailing-spaces": false, "whitespace": true},
			wantEnabled: false,
		},
		{
			name:        "tag disables",
			cfg:         Config{"whitespace": false},
			wantEnabled: false,
		},
		{
			name:        "default disables unmentioned rule",
			cfg:         Config{"default": false},
			wantEnabled: false,
		},
		{
			name:        "rule entry overrides default false",
			cfg:         Config{"default": false, "ml009": true},
			wantEnabled: true,
			wantOptions: map[string]any{},
		},
		{
			name:        "options mapping enables with options",
			cfg:         Config{"ml009": map[string]any{"br_spaces": 2}},
			wantEnabled: true,
			wantOptions: map[string]any{"br_spaces": 2},
		},
		{
			name:        "uppercase user keys",
			cfg:         Config{"ML009": false},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			enabled, options := Resolve(names, tags, tt.cfg)
			assert.Equal(t, tt.wantEnabled, enabled)
			if tt.wantOptions != nil {
				assert.Equal(t, tt.wantOptions, options)
			}
		})
	}
}

func TestResolveCanonicalNameBeatsAlias(t *testing.T) {
	t.Parallel()

	cfg := Config{"ml009": false, "no-trailing-spaces": true}
	enabled, _ := Resolve([]string{"ML009", "no-trailing-spaces"}, nil, cfg)
	assert.False(t, enabled)
}
