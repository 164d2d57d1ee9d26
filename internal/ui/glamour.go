package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// glamourGutter is the left/right margin glamour adds around a document.
const glamourGutter = 2

// hexColor drops the alpha channel glamour cannot parse (#RRGGBBAA).
func hexColor(c lipgloss.Color) string {
	s := string(c)
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		return s[:7]
	}
	return s
}

// websiteStyle maps the Vitesse palette onto glamour for the website view.
func websiteStyle() ansi.StyleConfig {
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }
	up := func(u uint) *uint { return &u }

	text := hexColor(Vitesse.Text)
	secondary := hexColor(Vitesse.Secondary)
	primary := hexColor(Vitesse.Primary)
	blue := hexColor(Vitesse.Blue)
	yellow := hexColor(Vitesse.Yellow)
	cyan := hexColor(Vitesse.Cyan)
	bgSoft := hexColor(Vitesse.BgSoft)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
			Margin:         up(1),
		},
		Paragraph:  ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
		BlockQuote: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(secondary), Italic: bp(true)}, Indent: up(1), IndentToken: sp("│ ")},
		List:       ansi.StyleList{LevelIndent: 2},
		Heading:    ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true), BlockSuffix: "\n"}},
		H1: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
			Color: sp(primary), Bold: bp(true), Prefix: " ", Suffix: " ",
		}},
		H2: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true), Prefix: "▍"}},
		H3: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(yellow), Bold: bp(true)}},

		Text:           ansi.StylePrimitive{Color: sp(text)},
		Emph:           ansi.StylePrimitive{Color: sp(secondary), Italic: bp(true)},
		Strong:         ansi.StylePrimitive{Bold: bp(true)},
		HorizontalRule: ansi.StylePrimitive{Color: sp(secondary), Format: "\n────────\n"},
		Item:           ansi.StylePrimitive{BlockPrefix: "▸ "},
		Enumeration:    ansi.StylePrimitive{BlockPrefix: ". "},

		Link:     ansi.StylePrimitive{Color: sp(cyan), Underline: bp(true)},
		LinkText: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true)},

		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(yellow), BackgroundColor: sp(bgSoft), Prefix: " ", Suffix: " "},
		},
		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
			CenterSeparator: sp("│"),
			ColumnSeparator: sp("│"),
			RowSeparator:    sp("─"),
		},
	}
}

// renderMarkdown renders md at width, returning md unchanged if glamour fails.
func renderMarkdown(r *glamour.TermRenderer, md string) string {
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func newWebsiteRenderer(width int) *glamour.TermRenderer {
	wrap := width - glamourGutter
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(websiteStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}
