package ui

import (
	"github.com/charmbracelet/lipgloss"

	"caid/internal/terminal"
)

// Design centralizes the TUI color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color
	Red     lipgloss.Color

	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	Bg     lipgloss.Color
	BgSoft lipgloss.Color
	Border lipgloss.Color

	// Text on accent backgrounds (chips, buttons)
	OnAccent lipgloss.Color

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse is the global theme for the terminal and website views.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#3a3a3a"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// ChipKeyStyle returns a style for the left-most highlighted chip in the status bar.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}

// ChipStyle returns a style for colored nuggets in the status bar.
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// Button renders a small accent button label.
func Button(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.OnAccent).Background(Vitesse.Primary).Padding(0, 1).Render(s)
}

// GhostButton renders a secondary, outlined-looking button label.
func GhostButton(s string) string {
	return lipgloss.NewStyle().Foreground(Vitesse.Primary).Background(Vitesse.BgSoft).Padding(0, 1).Render(s)
}

// lineStyle maps a history line kind to its color.
func lineStyle(k terminal.Kind) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch k {
	case terminal.KindSystem:
		return st.Foreground(Vitesse.Cyan)
	case terminal.KindError:
		return st.Foreground(Vitesse.Red)
	case terminal.KindCommand, terminal.KindInput:
		return st.Foreground(Vitesse.Primary)
	case terminal.KindMilestone:
		return st.Foreground(Vitesse.Yellow)
	default:
		return st.Foreground(Vitesse.Text)
	}
}
