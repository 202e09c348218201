package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/ledger/parser"
)

var (
	skipCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	skipContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// SkippedRenderer renders skipped-line diagnostics with terminal styling
// and surrounding source context.
type SkippedRenderer struct {
	source []byte
}

// NewSkippedRenderer creates a renderer with source content for context.
func NewSkippedRenderer(source []byte) *SkippedRenderer {
	return &SkippedRenderer{source: source}
}

// Render formats a single skipped line with context.
func (r *SkippedRenderer) Render(skipped parser.SkippedLine) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "line %d: %s\n", skipped.Line, skipped.Reason)

	lines := strings.Split(string(r.source), "\n")

	// Show up to two lines before and one line after the skipped line.
	start := skipped.Line - 3
	end := skipped.Line
	if start < 0 {
		start = 0
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}

	for i := start; i <= end; i++ {
		buf.WriteString("   ")
		buf.WriteString(skipContextStyle.Render(lines[i]))
		buf.WriteByte('\n')

		if i == skipped.Line-1 {
			buf.WriteString("   ")
			buf.WriteString(skipCaretStyle.Render(strings.Repeat("^", max(runewidth.StringWidth(lines[i]), 1))))
			buf.WriteByte('\n')
		}
	}

	return strings.TrimRight(buf.String(), "\n")
}

// RenderAll formats multiple skipped lines, separating them with blank
// lines.
func (r *SkippedRenderer) RenderAll(skipped []parser.SkippedLine) string {
	var parts []string
	for _, s := range skipped {
		parts = append(parts, r.Render(s))
	}
	return strings.Join(parts, "\n\n")
}
