package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/marklint/internal/ui/pretty"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "non-TTY writer disables color")
}

func TestIsColorEnabledRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

func TestNoColorStylesPassThrough(t *testing.T) {
	t.Parallel()

	s := pretty.NewStyles(false)
	assert.Equal(t, "a.md", s.Path("a.md"))
	assert.Equal(t, "12:", s.Location("12:"))
	assert.Equal(t, "ML009", s.RuleID("ML009"))
}

func TestTerminalWidthFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, 80, pretty.TerminalWidth(&buf, 80))
}
