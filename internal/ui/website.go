package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"caid/internal/content"
)

type section struct {
	ID    string
	Title string
}

// sections are the website anchors, in page order; keys 1-5 jump to them.
var sections = []section{
	{ID: "home", Title: "Home"},
	{ID: "about", Title: "About"},
	{ID: "roadmap", Title: "Roadmap"},
	{ID: "team", Title: "Team"},
	{ID: "contact", Title: "Contact"},
}

func sectionIndex(id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// siteMarkdown builds one markdown document per section.
func siteMarkdown(snap content.Snapshot) []string {
	co := content.DefaultCompany()
	mission, urgency := content.HeroFallback, content.UrgencyDefault
	if snap.Company != nil {
		co = *snap.Company
		if co.About.Mission != "" {
			mission = co.About.Mission
		}
		if co.About.Urgency != "" {
			urgency = co.About.Urgency
		}
	}
	md := make([]string, len(sections))

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", content.HeroTitle, mission)
	b.WriteString("**Get Investment Info** press `5` · **Return to Terminal** type `terminal`\n")
	md[0] = b.String()

	b.Reset()
	fmt.Fprintf(&b, "## The Crisis is Real\n\n%s\n\n", urgency)
	stats := content.SiteStats()
	row, sep, labels := "|", "|", "|"
	for _, s := range stats {
		row += " " + s.Value + " |"
		sep += "---|"
		labels += " " + s.Label + " |"
	}
	b.WriteString(row + "\n" + sep + "\n" + labels + "\n\n")
	for _, f := range content.SiteFeatures() {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", f.Title, f.Text)
	}
	md[1] = b.String()

	b.Reset()
	b.WriteString("## Development Roadmap\n\n*Our path to solving synthetic media detection*\n\n")
	if snap.Roadmap == nil || len(snap.Roadmap.Milestones) == 0 {
		b.WriteString("Roadmap information not available.\n")
	} else {
		for _, m := range snap.Roadmap.Milestones {
			fmt.Fprintf(&b, "### %s · %s\n\n%s\n\n`%s`\n\n", m.Target, m.Product, m.Function, m.Status)
		}
	}
	md[2] = b.String()

	b.Reset()
	b.WriteString("## Leadership Team\n\n*Experienced founders driving innovation in synthetic media detection*\n\n")
	if snap.Team == nil || len(snap.Team.Founders) == 0 {
		b.WriteString("Team information not available.\n")
	} else {
		for _, m := range snap.Team.Founders {
			fmt.Fprintf(&b, "### [%s] %s\n\n**%s**\n\n%s\n\n", content.Initials(m.Name), m.Name, m.Role, m.Focus)
			if m.Bio != "" {
				fmt.Fprintf(&b, "> %s\n\n", m.Bio)
			}
			if m.LinkedIn != "" {
				fmt.Fprintf(&b, "[LinkedIn](%s)\n\n", m.LinkedIn)
			}
		}
	}
	md[3] = b.String()

	b.Reset()
	b.WriteString("## Investment Opportunity\n\n*Join us in solving the synthetic media crisis*\n\n### Seed Funding Round\n\n")
	for _, h := range content.InvestmentHighlights() {
		fmt.Fprintf(&b, "- %s\n", h)
	}
	email := co.Contact.Email
	if email == "" {
		email = content.DefaultCompany().Contact.Email
	}
	fmt.Fprintf(&b, "\n**Email:** %s\n\nType `contact` to open the terminal contact form.\n\n---\n\n%s\n", email, content.FooterNote)
	md[4] = b.String()
	return md
}

// siteRenderedMsg carries the rendered website and the first line of every
// section.
type siteRenderedMsg struct {
	width int
	body  string
	marks []int
}

// renderSite renders every section and records where each one starts.
func renderSite(snap content.Snapshot, width int) siteRenderedMsg {
	r := newWebsiteRenderer(width)
	var b strings.Builder
	marks := make([]int, len(sections))
	for i, md := range siteMarkdown(snap) {
		marks[i] = strings.Count(b.String(), "\n")
		if i == 0 {
			b.WriteString("\n")
			b.WriteString(renderLogo(width))
		}
		b.WriteString(strings.TrimRight(renderMarkdown(r, md), "\n"))
		b.WriteString("\n\n")
	}
	return siteRenderedMsg{width: width, body: b.String(), marks: marks}
}

func renderSiteCmd(snap content.Snapshot, width int) tea.Cmd {
	return func() tea.Msg { return renderSite(snap, width) }
}

// jumpTo scrolls the website viewport to section i.
func (m *model) jumpTo(i int) {
	if i < 0 || i >= len(m.siteMarks) {
		return
	}
	m.site.SetYOffset(m.siteMarks[i])
}
