package terminal

import (
	"fmt"
	"strings"

	"caid/internal/content"
)

const (
	fallbackVersion = "1.0"
	fallbackWelcome = "Welcome to the frontline against synthetic media."
	fallbackEmail   = "team@caid.io"
	fallbackDemo    = "Schedule demo video call"
	fallbackPitch   = "Request pitch deck"
)

// Welcome returns the greeting block shown at start-up and after clear.
// degraded adds a warning that some data could not be loaded.
func Welcome(c *content.Company, degraded bool) []Line {
	version, welcome := fallbackVersion, fallbackWelcome
	if c != nil {
		if v := strings.TrimSpace(c.System.Version); v != "" {
			version = v
		}
		if w := strings.TrimSpace(c.System.WelcomeMessage); w != "" {
			welcome = w
		}
	}
	lines := []Line{
		sys(fmt.Sprintf("Initializing CAID v%s... Connection secure.", version)),
		sys(welcome),
		sys("Type 'help' to see available commands."),
		sys("Type 'website' to view traditional website layout."),
	}
	if degraded {
		lines = append(lines, errLine("Warning: Some features may be limited due to connection issues."))
	}
	return append(lines, prompt())
}

// Normalize lower-cases and trims a typed command.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Respond maps a typed command to its output block. The lookup is case- and
// whitespace-insensitive; unknown commands echo the input as typed.
func Respond(input string, data content.Snapshot) []Line {
	switch Normalize(input) {
	case "help":
		return helpLines()
	case "about":
		return aboutLines(data.Company)
	case "roadmap":
		return roadmapLines(data.Roadmap)
	case "team":
		return teamLines(data.Team)
	case "funding":
		f := content.DefaultFunding()
		if data.Funding != nil {
			f = *data.Funding
		}
		return fundingLines(f)
	case "contact":
		return contactLines(data.Company)
	case "website":
		return websiteLines()
	case "clear":
		w := Welcome(data.Company, false)
		return w[:len(w)-1]
	default:
		return notFound(input)
	}
}

func aboutLines(c *content.Company) []Line {
	if c == nil {
		return []Line{errLine("Company information not available.")}
	}
	return []Line{
		out(c.About.Name),
		blank(),
		out(c.About.Mission),
		out(c.About.Description),
		blank(),
		out(c.About.Urgency),
	}
}

func roadmapLines(r *content.Roadmap) []Line {
	if r == nil || r.Milestones == nil {
		return []Line{errLine("Roadmap data not available.")}
	}
	lines := []Line{
		{Kind: KindCommand, Text: "Executing command: roadmap... Accessing development timeline..."},
		blank(),
	}
	for i, m := range r.Milestones {
		lines = append(lines,
			Line{Kind: KindMilestone, Text: fmt.Sprintf("[MILESTONE %d: TARGET %s]", i+1, m.Target)},
			out("> Product:  "+m.Product),
			out("> Function: "+m.Function),
			out("> Status:   "+m.Status),
			blank(),
		)
	}
	return lines
}

func teamLines(t *content.Team) []Line {
	if t == nil || t.Founders == nil {
		return []Line{errLine("Team information not available.")}
	}
	lines := []Line{out("CAID Leadership Team:"), blank()}
	for _, m := range t.Founders {
		lines = append(lines,
			out("> "+m.Name),
			out("  Role: "+m.Role),
			out("  Focus: "+m.Focus),
		)
		if m.Bio != "" {
			lines = append(lines, out("  Bio: "+m.Bio))
		}
		lines = append(lines, blank())
	}
	return lines
}

func fundingLines(f content.Funding) []Line {
	lines := []Line{
		out("Investment Opportunity:"),
		blank(),
		out("> Stage: " + f.Stage),
		out("> Target: " + f.Target),
		out("> Focus: " + f.Focus),
		out("> Market: " + f.Market),
		blank(),
		out("We are actively seeking partnerships with:"),
	}
	for _, s := range f.Seeking {
		lines = append(lines, out("- "+s))
	}
	return append(lines,
		blank(),
		out("Use the 'contact' command to submit an investment inquiry."),
	)
}

func contactLines(c *content.Company) []Line {
	email, demo, pitch := fallbackEmail, fallbackDemo, fallbackPitch
	if c != nil {
		if c.Contact.Email != "" {
			email = c.Contact.Email
		}
		if c.Contact.Demo != "" {
			demo = c.Contact.Demo
		}
		if c.Contact.Pitch != "" {
			pitch = c.Contact.Pitch
		}
	}
	return []Line{
		out("Contact Information:"),
		blank(),
		out("> Email: " + email),
		out("> Demo: " + demo),
		out("> Pitch: " + pitch),
		blank(),
		{Kind: KindForm, Text: ContactForm},
	}
}

func websiteLines() []Line {
	return []Line{
		sys("Loading website interface..."),
		sys("Website loaded. Use terminal commands or scroll to navigate."),
		sys("Type 'terminal' to return to terminal-only mode."),
	}
}

func notFound(input string) []Line {
	return []Line{
		errLine("Command not found: " + input),
		errLine("Type 'help' to see available commands."),
	}
}
