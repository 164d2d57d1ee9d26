package ui

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"caid/internal/client"
	"caid/internal/content"
	"caid/internal/inquiry"
	"caid/internal/terminal"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type fakeBackend struct {
	client.Offline

	mu       sync.Mutex
	tracked  []content.CommandTrack
	inquired []content.InquiryCreate
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{Offline: client.Offline{Catalog: content.DefaultCatalog()}}
}

func (f *fakeBackend) TrackCommand(_ context.Context, t content.CommandTrack) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracked = append(f.tracked, t)
	return nil
}

func (f *fakeBackend) CreateInquiry(_ context.Context, in content.InquiryCreate) (content.InquiryReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inquired = append(f.inquired, in)
	return content.InquiryReceipt{Success: true, ID: "inq-1"}, nil
}

func apply(m model, msg tea.Msg) model {
	nm, _ := m.Update(msg)
	return nm.(model)
}

func ready(t *testing.T, fb *fakeBackend) model {
	t.Helper()
	m := initialModel(Options{Backend: fb, SessionID: "session_test"})
	m = apply(m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m = apply(m, loadCmd(fb)())
	if m.loading {
		t.Fatal("model still loading after loadedMsg")
	}
	return m
}

func run(m model, input string) model {
	m.ti.SetValue(input)
	m = apply(m, tea.KeyMsg{Type: tea.KeyEnter})
	return apply(m, execReadyMsg{})
}

func historyText(m model) string {
	var b strings.Builder
	for _, ln := range m.sess.History() {
		b.WriteString(ln.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadShowsGreeting(t *testing.T) {
	m := ready(t, newFakeBackend())
	if !strings.Contains(historyText(m), "Initializing CAID v1.0... Connection secure.") {
		t.Fatalf("greeting missing:\n%s", historyText(m))
	}
	view := xansi.Strip(m.View())
	if !strings.Contains(view, headerTitle) {
		t.Fatalf("header missing:\n%s", view)
	}
	if !strings.Contains(view, "session session_test") {
		t.Fatalf("status bar missing session:\n%s", view)
	}
}

func TestLoadingView(t *testing.T) {
	m := initialModel(Options{Backend: newFakeBackend()})
	if !strings.Contains(xansi.Strip(m.View()), "Loading CAID...") {
		t.Fatal("expected loading message")
	}
}

func TestExecuteAfterDelay(t *testing.T) {
	m := ready(t, newFakeBackend())
	m.ti.SetValue("help")
	m = apply(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.executing || m.ti.Value() != "" {
		t.Fatalf("expected executing with cleared input, got executing=%v value=%q", m.executing, m.ti.Value())
	}
	if !strings.Contains(xansi.Strip(m.View()), "Processing command...") {
		t.Fatal("spinner message missing while executing")
	}

	// keys are ignored while a command runs
	m = apply(m, keyRunes("x"))
	if m.ti.Value() != "" {
		t.Fatalf("input accepted while executing: %q", m.ti.Value())
	}

	m = apply(m, execReadyMsg{})
	if m.executing {
		t.Fatal("still executing after execReadyMsg")
	}
	h := historyText(m)
	if !strings.Contains(h, terminal.Prompt+"help") || !strings.Contains(h, "Available commands:") {
		t.Fatalf("unexpected history:\n%s", h)
	}
}

func TestBlankInputIgnored(t *testing.T) {
	m := ready(t, newFakeBackend())
	before := len(m.sess.History())
	m.ti.SetValue("   ")
	m = apply(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.executing || len(m.sess.History()) != before {
		t.Fatal("blank input should be ignored")
	}
}

func TestTrackCmdReportsCommand(t *testing.T) {
	fb := newFakeBackend()
	rt := 300
	msg := trackCmd(fb, content.CommandTrack{Command: "about", SessionID: "s", ResponseTime: &rt})()
	tm, ok := msg.(trackedMsg)
	if !ok || tm.err != nil || tm.command != "about" {
		t.Fatalf("unexpected msg: %#v", msg)
	}
	if len(fb.tracked) != 1 || *fb.tracked[0].ResponseTime != 300 {
		t.Fatalf("tracked: %+v", fb.tracked)
	}
}

func TestWebsiteSwitchIsDelayed(t *testing.T) {
	m := ready(t, newFakeBackend())
	m = run(m, "website")
	if m.showSite {
		t.Fatal("website view should wait for websiteReadyMsg")
	}
	if m.sess.Mode() != terminal.ModeWebsite {
		t.Fatalf("session mode = %v", m.sess.Mode())
	}
	m = apply(m, websiteReadyMsg{})
	if !m.showSite {
		t.Fatal("website view not shown")
	}
	if !strings.Contains(xansi.Strip(m.View()), websiteIndicator) {
		t.Fatal("website indicator missing")
	}

	m = run(m, "about")
	if !m.showSite || len(m.siteNote) == 0 {
		t.Fatalf("command output should show under the command bar: %+v", m.siteNote)
	}

	m = run(m, "terminal")
	if m.showSite || m.sess.Mode() != terminal.ModeTerminal {
		t.Fatal("terminal should switch back immediately")
	}
}

func TestWebsiteJumpKeys(t *testing.T) {
	m := ready(t, newFakeBackend())
	m = apply(m, renderSite(m.sess.Data(), m.width))
	m = run(m, "website")
	m = apply(m, websiteReadyMsg{})

	m = apply(m, keyRunes("4"))
	if m.site.YOffset == 0 {
		t.Fatal("jump to team did not scroll")
	}
	if m.ti.Value() != "" {
		t.Fatalf("digit should not be typed into an empty command bar: %q", m.ti.Value())
	}
	m = apply(m, keyRunes("1"))
	if m.site.YOffset != 0 {
		t.Fatalf("jump home: offset %d", m.site.YOffset)
	}

	m.ti.SetValue("x")
	m.ti.CursorEnd()
	m = apply(m, keyRunes("2"))
	if m.ti.Value() != "x2" {
		t.Fatalf("digits should be typed when the bar has text: %q", m.ti.Value())
	}
}

func TestTabCompletion(t *testing.T) {
	m := ready(t, newFakeBackend())
	m.ti.SetValue("ro")
	m = apply(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ti.Value() != "roadmap" || m.suggestVisible {
		t.Fatalf("single match: value=%q visible=%v", m.ti.Value(), m.suggestVisible)
	}

	m.ti.SetValue("te")
	m = apply(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.suggestVisible || m.ti.Value() != "team" {
		t.Fatalf("multiple matches: value=%q visible=%v", m.ti.Value(), m.suggestVisible)
	}
	m = apply(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ti.Value() != "terminal" {
		t.Fatalf("tab should cycle, got %q", m.ti.Value())
	}
	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.suggestVisible {
		t.Fatal("esc should close the dropdown")
	}
	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ti.Value() != "" {
		t.Fatalf("esc should clear input, got %q", m.ti.Value())
	}
}

func TestContactOpensForm(t *testing.T) {
	m := ready(t, newFakeBackend())
	m = run(m, "contact")
	if m.form == nil || m.formVals == nil {
		t.Fatal("contact should open the form")
	}
	if m.ti.Focused() {
		t.Fatal("prompt should blur while the form is open")
	}
	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.form != nil {
		t.Fatal("esc should cancel the form")
	}
}

func TestInquiryResult(t *testing.T) {
	m := ready(t, newFakeBackend())
	m.formVals = inquiry.NewForm()
	m.formVals.Name = "Ada"
	m.submitting = true
	m = apply(m, inquiryResultMsg{receipt: content.InquiryReceipt{Success: true, ID: "abc"}})
	if m.submitting {
		t.Fatal("submit state not cleared")
	}
	if m.formVals.Name != "" || m.formVals.Type != content.InquiryFunding {
		t.Fatalf("form not reset after success: %+v", m.formVals)
	}
	if !strings.Contains(historyText(m), "  Inquiry ID: abc") {
		t.Fatalf("success missing:\n%s", historyText(m))
	}

	m = apply(m, inquiryResultMsg{err: &client.APIError{Status: 422, Detail: "Email is invalid"}})
	if !strings.Contains(historyText(m), "  Error: Email is invalid") {
		t.Fatalf("failure missing:\n%s", historyText(m))
	}
}

func TestSubmitInquiryCmd(t *testing.T) {
	fb := newFakeBackend()
	req := content.InquiryCreate{Name: "Ada", Email: "ada@example.com", Message: "hi", InquiryType: content.InquiryDemo}
	msg := submitInquiryCmd(fb, req)().(inquiryResultMsg)
	if msg.err != nil || msg.receipt.ID != "inq-1" {
		t.Fatalf("unexpected result: %+v", msg)
	}
	if len(fb.inquired) != 1 || fb.inquired[0].InquiryType != content.InquiryDemo {
		t.Fatalf("inquired: %+v", fb.inquired)
	}
}

func TestSiteMarkdown(t *testing.T) {
	md := siteMarkdown(content.DefaultSnapshot())
	if len(md) != len(sections) {
		t.Fatalf("want %d sections, got %d", len(sections), len(md))
	}
	for i, want := range []string{content.HeroTitle, "The Crisis is Real", "Development Roadmap", "Leadership Team", "Investment Opportunity"} {
		if !strings.Contains(md[i], want) {
			t.Fatalf("section %d missing %q:\n%s", i, want, md[i])
		}
	}
	if !strings.Contains(md[3], "[SS] Sriram Saiteja") {
		t.Fatalf("team initials missing:\n%s", md[3])
	}

	empty := siteMarkdown(content.Snapshot{})
	if !strings.Contains(empty[2], "Roadmap information not available.") || !strings.Contains(empty[4], "team@caid.io") {
		t.Fatal("empty snapshot should fall back")
	}
}

func TestRenderSiteMarks(t *testing.T) {
	out := renderSite(content.DefaultSnapshot(), 80)
	if out.width != 80 || len(out.marks) != len(sections) {
		t.Fatalf("unexpected result: width=%d marks=%v", out.width, out.marks)
	}
	for i := 1; i < len(out.marks); i++ {
		if out.marks[i] <= out.marks[i-1] {
			t.Fatalf("marks not increasing: %v", out.marks)
		}
	}
	plain := xansi.Strip(out.body)
	for _, want := range []string{"Development Roadmap", "Leadership Team", "Seed Funding Round"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("rendered site missing %q", want)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	lines := []terminal.Line{
		{Kind: terminal.KindOutput, Text: strings.Repeat("word ", 10)},
		{Kind: terminal.KindPrompt},
		{Kind: terminal.KindForm, Text: terminal.ContactForm},
	}
	out := xansi.Strip(renderHistory(lines, 20))
	if n := strings.Count(out, "\n") + 1; n < 3 {
		t.Fatalf("long line should wrap, got %d lines:\n%s", n, out)
	}
	if strings.Contains(out, terminal.ContactForm) {
		t.Fatal("form marker should not render")
	}
}

func TestStatusBarFillsWidth(t *testing.T) {
	bar := renderStatusBar(60, []string{"terminal", "session x"}, []string{"online", "1.0.0"})
	if w := xansi.StringWidth(bar); w != 60 {
		t.Fatalf("status bar width = %d", w)
	}
}

func TestContactDraftSurvivesFailure(t *testing.T) {
	m := ready(t, newFakeBackend())
	m.formVals = inquiry.NewForm()
	m.formVals.Name = "Ada"
	m.formVals.Email = "ada@"
	m.formVals.Validate()
	m.submitting = true
	m = apply(m, inquiryResultMsg{err: errors.New("connection refused")})

	m = run(m, "contact")
	if m.form == nil || m.formVals.Name != "Ada" {
		t.Fatalf("reopened form should keep the draft: %+v", m.formVals)
	}
	if !strings.Contains(formIntro(m.formVals), "Email is invalid") {
		t.Fatalf("intro should list previous errors: %q", formIntro(m.formVals))
	}
}

func TestValidatorClearsFixedField(t *testing.T) {
	vals := inquiry.NewForm()
	vals.Validate()
	if _, ok := vals.Errors()[inquiry.FieldName]; !ok {
		t.Fatal("expected a name error")
	}
	check := validator(vals, inquiry.FieldName)
	if err := check(""); err == nil {
		t.Fatal("blank name should fail")
	}
	if err := check("Ada"); err != nil {
		t.Fatalf("valid name failed: %v", err)
	}
	if _, ok := vals.Errors()[inquiry.FieldName]; ok {
		t.Fatal("name error should be cleared once fixed")
	}
	if _, ok := vals.Errors()[inquiry.FieldEmail]; !ok {
		t.Fatal("other errors must stay")
	}
}

func TestSubmitErrorFieldMap(t *testing.T) {
	err := submitError(&client.APIError{Status: 422, Detail: `{"email":"Email is invalid","name":"Name is required"}`})
	if got := err.Error(); got != "Name is required; Email is invalid" {
		t.Fatalf("got %q", got)
	}
	if got := submitError(&client.APIError{Status: 500, Detail: "Internal server error"}).Error(); got != "Internal server error" {
		t.Fatalf("got %q", got)
	}
}
