package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"caid/internal/terminal"
)

const maxSuggestions = 8

// complete handles Tab. A single match is filled in directly; several
// matches open the dropdown, and further presses cycle through it.
func (m *model) complete() {
	if m.suggestVisible && len(m.suggestions) > 0 {
		m.suggestIndex = (m.suggestIndex + 1) % len(m.suggestions)
		m.ti.SetValue(m.suggestions[m.suggestIndex])
		m.ti.CursorEnd()
		return
	}
	matches := terminal.Complete(m.ti.Value())
	switch len(matches) {
	case 0:
		m.hideSuggestions()
	case 1:
		m.ti.SetValue(matches[0])
		m.ti.CursorEnd()
		m.hideSuggestions()
	default:
		m.suggestions = matches
		m.suggestIndex = 0
		m.suggestVisible = true
		m.ti.SetValue(matches[0])
		m.ti.CursorEnd()
	}
}

// moveSuggestion steps the dropdown selection by delta, wrapping around.
func (m *model) moveSuggestion(delta int) {
	n := len(m.suggestions)
	if n == 0 {
		return
	}
	m.suggestIndex = (m.suggestIndex + delta + n) % n
	m.ti.SetValue(m.suggestions[m.suggestIndex])
	m.ti.CursorEnd()
}

func (m *model) hideSuggestions() {
	m.suggestVisible = false
	m.suggestions = nil
	m.suggestIndex = 0
}

func commandDesc(name string) string {
	if c, ok := terminal.Lookup(name); ok {
		return c.Desc
	}
	return ""
}

// renderSuggestions draws the completion dropdown under the input box.
func renderSuggestions(width int, names []string, sel int) string {
	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}
	inner := max(20, width-2)
	hl := lipgloss.NewStyle().Foreground(Vitesse.Primary).Bold(true).Render
	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted).Render
	border := lipgloss.NewStyle().Foreground(Vitesse.Border).Render

	var b strings.Builder
	b.WriteString(border("╭" + strings.Repeat("─", inner) + "╮"))
	b.WriteString("\n")
	for i, n := range names {
		line := fmt.Sprintf("  %-10s %s", n, commandDesc(n))
		line = truncate(line, inner)
		if i == sel {
			line = hl(line)
		} else {
			line = dim(line)
		}
		b.WriteString(border("│"))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", max(0, inner-xansi.StringWidth(line))))
		b.WriteString(border("│"))
		b.WriteString("\n")
	}
	b.WriteString(border("╰" + strings.Repeat("─", inner) + "╯"))
	b.WriteString("\n")
	b.WriteString(dim("  ↑/↓ select · Tab next · Enter run · Esc close"))
	b.WriteString("\n")
	return b.String()
}
