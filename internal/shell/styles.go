package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danmuck/tapcode/internal/tapcode"
	"github.com/mattn/go-runewidth"
)

// Styles colors shell output. The zero value renders plain text.
type Styles struct {
	Title    lipgloss.Style
	Success  lipgloss.Style
	Farewell lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style

	colored bool
}

// NewStyles binds styles to r. With noColor every style renders text unchanged.
func NewStyles(r *lipgloss.Renderer, noColor bool) Styles {
	if noColor || r == nil {
		return Styles{}
	}
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Farewell: r.NewStyle().Foreground(lipgloss.Color("6")),
		Heading:  r.NewStyle().Bold(true).Underline(true),
		Muted:    r.NewStyle().Faint(true),
		colored:  true,
	}
}

func (s Styles) paint(style lipgloss.Style, text string) string {
	if !s.colored {
		return text
	}
	return style.Render(text)
}

// RenderGrid draws g as a 5x5 table with 1-based row and column tap counts.
func RenderGrid(g *tapcode.Grid) string {
	rows := g.Rows()
	width := 1
	for _, row := range rows {
		for _, r := range row {
			if w := runewidth.RuneWidth(r); w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("    ")
	for col := 1; col <= tapcode.Size; col++ {
		b.WriteString(runewidth.FillRight(fmt.Sprint(col), width))
		if col < tapcode.Size {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	for i, row := range rows {
		fmt.Fprintf(&b, "%d | ", i+1)
		for j, r := range row {
			b.WriteString(runewidth.FillRight(string(r), width))
			if j < tapcode.Size-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "tap marker: %q", g.Marker())
	return b.String()
}
