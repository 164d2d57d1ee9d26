package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	appver "caid/internal/version"
)

const maxSiteNote = 3

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch {
	case m.loading:
		body = m.loadingView()
	case m.showSite:
		body = m.websiteView()
	default:
		body = m.terminalView()
	}
	return zone.Scan(body)
}

func (m model) loadingView() string {
	msg := m.spin.View() + " Loading CAID..."
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m model) terminalView() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.width, ""))
	b.WriteString(m.hist.View())
	b.WriteString("\n")
	b.WriteString(m.terminalFooter())
	b.WriteString(m.renderStatusBarLine())
	return b.String()
}

// terminalFooter is everything between the history and the status bar:
// the contact form, a spinner, or the prompt.
func (m model) terminalFooter() string {
	switch {
	case m.form != nil:
		return m.form.View() + "\n"
	case m.submitting:
		return "  " + m.spin.View() + " Submitting inquiry...\n"
	case m.executing:
		return "  " + m.spin.View() + " Processing command...\n"
	}
	out := zone.Mark("cli.input", renderInputUI(m.width, m.ti.View()))
	if m.suggestVisible {
		out += renderSuggestions(m.width, m.suggestions, m.suggestIndex)
	}
	return out
}

func (m model) websiteView() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.width, websiteIndicator))
	b.WriteString(m.websiteTop())
	b.WriteString(m.site.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBarLine())
	return b.String()
}

// websiteTop holds the section nav, the command bar and the last output.
func (m model) websiteTop() string {
	var b strings.Builder
	nav := make([]string, 0, len(sections)+1)
	for i, s := range sections {
		label := string(rune('1'+i)) + " " + s.Title
		nav = append(nav, zone.Mark("nav."+s.ID, GhostButton(label)))
	}
	nav = append(nav, zone.Mark("nav.terminal", Button(IconTerminal()+" Return to Terminal")))
	b.WriteString(strings.Join(nav, " "))
	b.WriteString("\n")

	if m.executing {
		b.WriteString(renderInputUI(m.width, " "+m.spin.View()+" Processing command..."))
	} else {
		b.WriteString(zone.Mark("cli.input", renderInputUI(m.width, m.ti.View())))
	}
	if m.suggestVisible {
		b.WriteString(renderSuggestions(m.width, m.suggestions, m.suggestIndex))
	}
	note := m.siteNote
	if len(note) > maxSiteNote {
		note = note[:maxSiteNote]
	}
	for _, ln := range note {
		b.WriteString(lineStyle(ln.Kind).Render(truncate(ln.Text, max(10, m.width-2))))
		b.WriteString("\n")
	}
	return b.String()
}

// renderStatusBarLine builds the status bar string (one line plus a newline).
func (m model) renderStatusBarLine() string {
	mode := IconTerminal() + " terminal"
	if m.showSite {
		mode = IconWebsite() + " website"
	}
	left := []string{mode, "session " + m.sess.ID}
	if m.sess.Degraded() {
		left = append(left, "limited data")
	}

	conn := IconOnline() + " online"
	if m.offline {
		conn = IconOffline() + " offline"
	}
	right := []string{
		conn,
		IconClock() + " " + m.now.Format("15:04:05"),
		IconVersion() + " " + appver.AppVersion,
	}
	return renderStatusBar(m.width, left, right) + "\n"
}
