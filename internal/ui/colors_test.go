package ui

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysdash/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestSeverityColors(t *testing.T) {
	assert.Equal(t, lipgloss.Color("10"), ColorNormal)
	assert.Equal(t, lipgloss.Color("11"), ColorElevated)
	assert.Equal(t, lipgloss.Color("9"), ColorCritical)
}

func TestStylesAreFunctional(t *testing.T) {
	DisableColors()

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Error", ErrorStyle()},
		{"Warning", WarningStyle()},
		{"Muted", MutedStyle()},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "test text", tt.style.Render("test text"))
		})
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()

	t.Run("structured error keeps its symbol", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, errors.New(errors.ErrTerminal, "No terminal", "Run sysdash in a terminal."))

		out := buf.String()
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(SymbolFail)))
		assert.Contains(t, out, "No terminal")
		assert.Contains(t, out, "Run sysdash in a terminal.")
	})

	t.Run("plain error gets a symbol", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, fmt.Errorf("boom"))
		assert.Equal(t, SymbolFail+" boom\n", buf.String())
	})

	t.Run("nil prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, nil)
		assert.Empty(t, buf.String())
	})
}

func TestPrintWarning(t *testing.T) {
	DisableColors()

	var buf bytes.Buffer
	PrintWarning(&buf, "test warning message")

	assert.Contains(t, buf.String(), "test warning message")
	assert.Contains(t, buf.String(), SymbolWarning)
}

func TestRenderHeader(t *testing.T) {
	DisableColors()

	out := RenderHeader(HeaderInfo{Version: "v1.2.3", Tagline: "terminal system dashboard"})

	assert.Contains(t, out, "sysdash v1.2.3\n")
	assert.Contains(t, out, "terminal system dashboard\n")
	assert.Contains(t, out, "─")

	bare := RenderHeader(HeaderInfo{Version: "dev"})
	assert.NotContains(t, bare, "terminal system dashboard")
}
