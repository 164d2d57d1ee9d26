package terminal

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Command describes one entry of the help table.
type Command struct {
	Name string `json:"name"`
	Desc string `json:"description"`
	// Hidden commands work but are not listed by help.
	Hidden bool `json:"hidden,omitempty"`
}

var commands = []Command{
	{Name: "help", Desc: "Show this help message"},
	{Name: "about", Desc: "Learn about CAID"},
	{Name: "roadmap", Desc: "View development timeline"},
	{Name: "team", Desc: "Meet the founders"},
	{Name: "funding", Desc: "Investment opportunities"},
	{Name: "contact", Desc: "Get in touch with investment form"},
	{Name: "website", Desc: "View traditional website layout"},
	{Name: "clear", Desc: "Clear terminal"},
	{Name: "terminal", Desc: "Return to terminal-only mode", Hidden: true},
}

// Commands returns the command table, hidden entries included.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

// Lookup finds a command by its normalized name.
func Lookup(name string) (Command, bool) {
	name = Normalize(name)
	for _, c := range commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

func helpLines() []Line {
	lines := []Line{out("Available commands:")}
	for _, c := range commands {
		if c.Hidden {
			continue
		}
		lines = append(lines, out(fmt.Sprintf("  %-8s - %s", c.Name, c.Desc)))
	}
	return lines
}

// Complete returns command names matching the typed prefix, best match
// first. Exact prefix matches rank ahead of fuzzy ones.
func Complete(input string) []string {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return nil
	}
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	var res []string
	seen := map[string]bool{}
	for _, n := range names {
		if strings.HasPrefix(n, q) {
			res = append(res, n)
			seen[n] = true
		}
	}
	for _, m := range fuzzy.Find(q, names) {
		if !seen[m.Str] {
			res = append(res, m.Str)
			seen[m.Str] = true
		}
	}
	return res
}
