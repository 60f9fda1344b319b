package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func plainStyles(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFormatComponentLine(t *testing.T) {
	plainStyles(t)

	line := FormatComponentLine("Button", StatusCreated)
	assert.True(t, strings.HasPrefix(line, "Button"))
	assert.True(t, strings.HasSuffix(line, "created"))
	assert.Equal(t, minNameColumnWidth+len("created"), len(line))

	long := FormatComponentLine(strings.Repeat("x", 40), StatusFailed)
	assert.Contains(t, long, strings.Repeat("x", 40)+"  failed")
}

func TestFormatFileList(t *testing.T) {
	plainStyles(t)

	out := FormatFileList([]string{"index.js", "Button.js"})
	assert.Equal(t, "  └─ index.js\n  └─ Button.js\n", out)
	assert.Empty(t, FormatFileList(nil))
}

func TestFormatSummary(t *testing.T) {
	plainStyles(t)

	assert.Equal(t, "✔ 2 created, 0 failed", FormatSummary(2, 0))
	assert.Equal(t, "1 created, 1 failed", FormatSummary(1, 1))
}

func TestStatusStyleUnknown(t *testing.T) {
	plainStyles(t)
	assert.Equal(t, "other", StatusStyle("other").Render("other"))
}
