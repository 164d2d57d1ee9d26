package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"caid/internal/content"
	"caid/internal/inquiry"
	"caid/internal/system"
	"caid/internal/terminal"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m model) update(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ti.Width = max(5, msg.Width-4-len(terminal.Prompt))
		m.hist.Width = msg.Width
		m.site.Width = msg.Width
		if !m.loading && msg.Width != m.siteWidth {
			m.siteWidth = msg.Width
			return m, renderSiteCmd(m.sess.Data(), msg.Width)
		}
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case spinner.TickMsg:
		if m.loading || m.executing || m.submitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			system.Logger.Warn("start-up data incomplete", "err", msg.err)
		}
		m.sess.SetData(msg.snap, msg.degraded)
		m.siteWidth = m.width
		return m, renderSiteCmd(msg.snap, m.width)
	case siteRenderedMsg:
		if msg.width != m.siteWidth {
			return m, nil
		}
		m.site.SetContent(msg.body)
		m.siteMarks = msg.marks
		return m, nil
	case execReadyMsg:
		return m.finishExec()
	case websiteReadyMsg:
		if m.sess.Mode() == terminal.ModeWebsite {
			m.showSite = true
			m.site.GotoTop()
		}
		return m, nil
	case inquiryResultMsg:
		m.submitting = false
		if msg.err != nil {
			// the draft is kept so the next `contact` starts from it
			system.Logger.Warn("inquiry submit failed", "err", msg.err)
			m.sess.InquiryFailed(submitError(msg.err))
		} else {
			system.Logger.Info("inquiry submitted", "id", msg.receipt.ID)
			m.sess.InquirySucceeded(msg.receipt.ID)
			if m.formVals != nil {
				m.formVals.Reset()
			}
		}
		return m, m.ti.Focus()
	case trackedMsg:
		if msg.err != nil {
			system.Logger.Debug("track command failed", "command", msg.command, "err", msg.err)
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}
	if m.form != nil {
		return m.updateForm(msg)
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.loading || m.executing || m.submitting {
		return m, nil
	}
	switch s := msg.String(); s {
	case "esc":
		if m.suggestVisible {
			m.hideSuggestions()
			return m, nil
		}
		m.ti.SetValue("")
		return m, nil
	case "tab":
		m.complete()
		return m, nil
	case "up", "down":
		if m.suggestVisible {
			if s == "up" {
				m.moveSuggestion(-1)
			} else {
				m.moveSuggestion(1)
			}
			return m, nil
		}
		return m.scroll(msg)
	case "pgup", "pgdown":
		return m.scroll(msg)
	case "enter":
		m.hideSuggestions()
		return m.submit()
	case "1", "2", "3", "4", "5":
		if m.showSite && m.ti.Value() == "" {
			m.jumpTo(int(s[0] - '1'))
			return m, nil
		}
	}
	m.hideSuggestions()
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// scroll forwards navigation to whichever viewport is on screen.
func (m model) scroll(msg tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	if m.showSite {
		m.site, cmd = m.site.Update(msg)
	} else {
		m.hist, cmd = m.hist.Update(msg)
	}
	return m, cmd
}

func (m model) handleMouse(msg tea.MouseMsg) (model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		return m.scroll(msg)
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.form != nil {
		return m, nil
	}
	if m.showSite {
		for i, s := range sections {
			if zone.Get("nav." + s.ID).InBounds(msg) {
				m.jumpTo(i)
				return m, nil
			}
		}
		if zone.Get("nav.terminal").InBounds(msg) && !m.executing && !m.loading {
			m.ti.SetValue("terminal")
			return m.submit()
		}
	}
	if zone.Get("cli.input").InBounds(msg) {
		return m, m.ti.Focus()
	}
	return m, nil
}

// submit starts executing the typed command. Blank input is ignored.
func (m model) submit() (model, tea.Cmd) {
	val := m.ti.Value()
	if strings.TrimSpace(val) == "" || m.executing {
		return m, nil
	}
	m.ti.SetValue("")
	m.queued = val
	m.executing = true
	m.startedAt = time.Now()
	return m, tea.Batch(m.spin.Tick, execDelayCmd())
}

func (m model) finishExec() (model, tea.Cmd) {
	if !m.executing {
		return m, nil
	}
	input := m.queued
	m.queued = ""
	m.executing = false
	res := m.sess.Execute(input)
	if res.Command == "" {
		return m, nil
	}

	elapsed := int(time.Since(m.startedAt).Milliseconds())
	cmds := []tea.Cmd{trackCmd(m.backend, content.CommandTrack{
		Command:      res.Command,
		SessionID:    m.sess.ID,
		ResponseTime: &elapsed,
	})}
	switch {
	case res.ModeChanged && res.Mode == terminal.ModeWebsite:
		cmds = append(cmds, websiteDelayCmd())
	case res.ModeChanged && res.Mode == terminal.ModeTerminal:
		m.showSite = false
		m.siteNote = nil
	case m.showSite:
		m.siteNote = visibleLines(res.Lines)
	}
	if res.Form {
		cmds = append(cmds, m.openForm())
	}
	return m, tea.Batch(cmds...)
}

func visibleLines(lines []terminal.Line) []terminal.Line {
	out := make([]terminal.Line, 0, len(lines))
	for _, ln := range lines {
		if ln.Kind != terminal.KindPrompt && ln.Kind != terminal.KindForm {
			out = append(out, ln)
		}
	}
	return out
}

func (m *model) openForm() tea.Cmd {
	m.hideSuggestions()
	if m.formVals == nil {
		m.formVals = inquiry.NewForm()
	}
	m.form = newContactForm(m.formVals, m.width-4)
	m.ti.Blur()
	return m.form.Init()
}

func (m model) updateForm(msg tea.Msg) (model, tea.Cmd) {
	f, cmd := m.form.Update(msg)
	if ff, ok := f.(*huh.Form); ok {
		m.form = ff
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		if errs := m.formVals.Validate(); !errs.OK() {
			m.sess.InquiryFailed(errs)
			return m, m.ti.Focus()
		}
		m.submitting = true
		return m, tea.Batch(cmd, m.spin.Tick, submitInquiryCmd(m.backend, m.formVals.Request()))
	case huh.StateAborted:
		m.form = nil
		return m, m.ti.Focus()
	}
	return m, cmd
}

// layout sizes the viewports for the current state and refreshes the
// history content, following the newest line.
func (m *model) layout() {
	const header, status = 2, 1
	h := max(3, m.height-header-status-lipgloss.Height(m.terminalFooter()))
	body := renderHistory(m.sess.History(), m.width)
	if body != m.histBody || h != m.hist.Height {
		m.hist.Height = h
		m.histBody = body
		m.hist.SetContent(body)
		m.hist.GotoBottom()
	}
	m.site.Height = max(3, m.height-header-status-lipgloss.Height(m.websiteTop()))
}
