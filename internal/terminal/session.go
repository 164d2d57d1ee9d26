package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"caid/internal/content"
)

// Result describes what a single Execute call did.
type Result struct {
	// Command is the normalized command, empty when the input was ignored.
	Command string
	// Lines are the history entries appended by this call (after the echo).
	Lines []Line
	Mode  Mode
	// ModeChanged reports a terminal <-> website switch.
	ModeChanged bool
	// Cleared reports that history was reset to the greeting.
	Cleared bool
	// Form reports that the contact form was requested.
	Form bool
}

// Session holds one visitor's terminal history, view mode and the
// pre-fetched data the commands read. A Session is not safe for concurrent use.
type Session struct {
	ID       string
	data     content.Snapshot
	degraded bool
	mode     Mode
	history  []Line
}

// NewSession starts a session greeted with Welcome.
func NewSession(id string, data content.Snapshot, degraded bool) *Session {
	if id == "" {
		id = NewSessionID()
	}
	s := &Session{ID: id}
	s.SetData(data, degraded)
	return s
}

// NewSessionID returns an id of the form session_<unix-ms>_<9 chars>.
func NewSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}

// SetData replaces the session data and resets history to the greeting.
func (s *Session) SetData(data content.Snapshot, degraded bool) {
	s.data = data
	s.degraded = degraded
	s.history = Welcome(data.Company, degraded)
}

func (s *Session) Data() content.Snapshot { return s.data }
func (s *Session) Degraded() bool { return s.degraded }
func (s *Session) Mode() Mode { return s.mode }

// History returns a copy of the current history.
func (s *Session) History() []Line {
	return append([]Line(nil), s.history...)
}

// Execute runs one typed command. Blank input is ignored.
func (s *Session) Execute(input string) Result {
	cmd := Normalize(input)
	if cmd == "" {
		return Result{Mode: s.mode}
	}
	res := Result{Command: cmd}
	s.dropPrompt()
	s.history = append(s.history, Line{Kind: KindInput, Text: Prompt + input})

	switch {
	case cmd == "terminal" && s.mode == ModeWebsite:
		s.mode = ModeTerminal
		res.ModeChanged = true
		res.Lines = []Line{sys("Returning to terminal mode..."), prompt()}
		s.history = append(s.history, res.Lines...)
	case cmd == "clear":
		s.history = Welcome(s.data.Company, false)
		res.Cleared = true
		res.Lines = s.History()
	case cmd == "website":
		res.Lines = websiteLines()
		s.history = append(s.history, res.Lines...)
		if s.mode != ModeWebsite {
			s.mode = ModeWebsite
			res.ModeChanged = true
		}
	default:
		lines := Respond(input, s.data)
		for _, ln := range lines {
			if ln.Kind == KindForm {
				res.Form = true
			}
		}
		// The form only renders in terminal mode.
		if res.Form && s.mode == ModeWebsite {
			s.mode = ModeTerminal
			res.ModeChanged = true
		}
		res.Lines = append(lines, prompt())
		s.history = append(s.history, res.Lines...)
	}
	res.Mode = s.mode
	return res
}

// InquirySucceeded reports a stored inquiry in the history.
func (s *Session) InquirySucceeded(id string) []Line {
	lines := append([]Line{blank()}, InquiryReceipt(id)...)
	lines = append(lines, prompt())
	s.dropPrompt()
	s.history = append(s.history, lines...)
	return lines
}

// InquiryReceipt is the confirmation shown for a stored inquiry.
func InquiryReceipt(id string) []Line {
	return []Line{
		out("✓ Investment inquiry submitted successfully!"),
		out("  Inquiry ID: " + id),
		out("  Our team will review your inquiry and respond within 48 hours."),
		blank(),
		out("Thank you for your interest in CAID."),
	}
}

// InquiryFailed reports a failed submission in the history.
func (s *Session) InquiryFailed(err error) []Line {
	msg := "Unknown error"
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	lines := []Line{
		blank(),
		errLine("✗ Failed to submit inquiry. Please try again."),
		errLine("  Error: " + msg),
		blank(),
		prompt(),
	}
	s.dropPrompt()
	s.history = append(s.history, lines...)
	return lines
}

func (s *Session) dropPrompt() {
	if n := len(s.history); n > 0 && s.history[n-1].Kind == KindPrompt {
		s.history = s.history[:n-1]
	}
}
