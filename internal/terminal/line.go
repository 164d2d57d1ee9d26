package terminal

// Kind classifies a history line; the UI styles each kind differently.
type Kind string

const (
	KindSystem    Kind = "system"
	KindOutput    Kind = "output"
	KindError     Kind = "error"
	KindCommand   Kind = "command"
	KindMilestone Kind = "milestone"
	KindInput     Kind = "input"
	KindPrompt    Kind = "prompt"
	KindForm      Kind = "form"
)

// Prompt precedes every echoed command.
const Prompt = "user@caid:~$ "

// ContactForm is the content of the form marker emitted by the contact command.
const ContactForm = "contact_form"

// Line is one entry of the terminal history. The JSON shape matches the
// {type, content} blocks served by /api/commands.
type Line struct {
	Kind Kind   `json:"type"`
	Text string `json:"content"`
}

func out(s string) Line { return Line{Kind: KindOutput, Text: s} }
func sys(s string) Line { return Line{Kind: KindSystem, Text: s} }
func errLine(s string) Line { return Line{Kind: KindError, Text: s} }
func prompt() Line { return Line{Kind: KindPrompt} }
func blank() Line { return out("") }

// Mode is the active view.
type Mode int

const (
	ModeTerminal Mode = iota
	ModeWebsite
)

func (m Mode) String() string {
	if m == ModeWebsite {
		return "website"
	}
	return "terminal"
}
