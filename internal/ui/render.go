package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"

	"caid/internal/terminal"
)

const headerTitle = "CAID // CONTENT AUTHENTICITY INITIATIVE"

const websiteIndicator = "Website Mode - Type 'terminal' to return"

// renderHeader draws the title row with an optional right-aligned indicator
// and a rule underneath.
func renderHeader(width int, right string) string {
	if width <= 0 {
		width = 80
	}
	left := AccentBold().Render(headerTitle)
	r := ""
	if right != "" {
		r = lipgloss.NewStyle().Foreground(Vitesse.Yellow).Render(right)
	}
	gap := width - xansi.StringWidth(left) - xansi.StringWidth(r)
	if gap < 1 {
		r = ""
		gap = max(0, width-xansi.StringWidth(left))
	}
	rule := lipgloss.NewStyle().Foreground(Vitesse.Border).Render(strings.Repeat("─", width))
	return left + strings.Repeat(" ", gap) + r + "\n" + rule + "\n"
}

// renderInputUI draws a single-line bordered box around content.
func renderInputUI(width int, content string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	if w < 10 {
		w = 10
	}
	inner := w - 2
	cw := xansi.StringWidth(content)
	if cw > inner {
		content = xansi.Truncate(content, inner, "")
		cw = inner
	}
	border := lipgloss.NewStyle().Foreground(Vitesse.Border).Render
	var sb strings.Builder
	sb.WriteString(border("╭" + strings.Repeat("─", inner) + "╮"))
	sb.WriteString("\n")
	sb.WriteString(border("│"))
	sb.WriteString(content)
	sb.WriteString(strings.Repeat(" ", inner-cw))
	sb.WriteString(border("│"))
	sb.WriteString("\n")
	sb.WriteString(border("╰" + strings.Repeat("─", inner) + "╯"))
	sb.WriteString("\n")
	return sb.String()
}

// renderHistory styles history lines, wrapping long ones to width. Prompt
// and form markers are skipped because the live input is drawn separately.
func renderHistory(lines []terminal.Line, width int) string {
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	for _, ln := range lines {
		if ln.Kind == terminal.KindPrompt || ln.Kind == terminal.KindForm {
			continue
		}
		st := lineStyle(ln.Kind)
		text := ln.Text
		if runewidth.StringWidth(text) > width {
			text = runewidth.Wrap(text, width)
		}
		for _, part := range strings.Split(text, "\n") {
			b.WriteString(st.Render(part))
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderStatusBar draws chips on the left and right of a full-width bar.
// The first left part is highlighted.
func renderStatusBar(width int, left, right []string) string {
	if width <= 0 {
		width = 100
	}
	base := StatusBarBase()
	var l strings.Builder
	for i, p := range left {
		if i == 0 {
			l.WriteString(ChipKeyStyle().Render(p))
			continue
		}
		l.WriteString(base.Render(" " + p))
	}
	var r strings.Builder
	for i, p := range right {
		if i == len(right)-1 {
			r.WriteString(ChipStyle(Vitesse.Blue).Render(p))
			continue
		}
		r.WriteString(base.Render(p + " "))
	}
	ls, rs := l.String(), r.String()
	lw, rw := xansi.StringWidth(ls), xansi.StringWidth(rs)
	if lw+rw > width {
		ls = xansi.Truncate(ls, max(0, width-rw-1), "…")
		lw = xansi.StringWidth(ls)
	}
	pad := max(0, width-lw-rw)
	return ls + base.Render(strings.Repeat(" ", pad)) + rs
}

// truncate shortens plain text to w cells.
func truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
