package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"caid/internal/client"
	"caid/internal/content"
	"caid/internal/inquiry"
	"caid/internal/terminal"
)

// Backend is everything the TUI needs from the CAID API.
type Backend interface {
	client.Source
	TrackCommand(ctx context.Context, t content.CommandTrack) error
	Submitter
}

// Options configures a TUI session.
type Options struct {
	Backend Backend
	// SessionID overrides the generated analytics session id.
	SessionID string
	// Offline marks the status bar; the backend is a local catalog.
	Offline bool
}

// Model for TUI
type model struct {
	backend Backend
	offline bool
	sess    *terminal.Session

	loading  bool
	histBody string
	quitting bool

	// command execution
	executing bool
	queued    string
	startedAt time.Time

	// website view; the session mode flips first and the view follows
	// after websiteDelay
	showSite  bool
	siteMarks []int
	siteWidth int
	siteNote  []terminal.Line

	// contact form
	form       *huh.Form
	formVals   *inquiry.Form
	submitting bool

	// completion dropdown
	suggestVisible bool
	suggestions    []string
	suggestIndex   int

	ti   textinput.Model
	spin spinner.Model
	hist viewport.Model
	site viewport.Model

	width  int
	height int
	now    time.Time
}

func initialModel(opts Options) model {
	backend := opts.Backend
	if backend == nil {
		backend = client.Offline{Catalog: content.DefaultCatalog()}
	}
	m := model{
		backend: backend,
		offline: opts.Offline,
		sess:    terminal.NewSession(opts.SessionID, content.Snapshot{}, false),
		loading: true,
		width:   80,
		height:  24,
		now:     time.Now(),
	}

	ti := textinput.New()
	ti.Prompt = terminal.Prompt
	ti.PromptStyle = AccentBold()
	ti.Placeholder = "type 'help' to begin"
	ti.CharLimit = 256
	ti.Focus()
	m.ti = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	m.spin = sp

	m.hist = viewport.New(m.width, 10)
	m.site = viewport.New(m.width, 10)
	return m
}

// InitialModel builds the TUI root model.
func InitialModel(opts Options) tea.Model { return initialModel(opts) }

func (m model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.backend), m.spin.Tick, textinput.Blink, tickCmd())
}
