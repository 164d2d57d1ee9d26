package ui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

const logoHeight = 5

// logoBlocks returns one 5-row glyph per letter of CAID.
func logoBlocks() [][]string {
	C := []string{
		" ##### ",
		" ##    ",
		" ##    ",
		" ##    ",
		" ##### ",
	}
	A := []string{
		"  ###  ",
		" ## ## ",
		" ##### ",
		" ## ## ",
		" ## ## ",
	}
	I := []string{
		" #### ",
		"  ##  ",
		"  ##  ",
		"  ##  ",
		" #### ",
	}
	D := []string{
		" ####  ",
		" ## ## ",
		" ## ## ",
		" ## ## ",
		" ####  ",
	}
	return [][]string{C, A, I, D}
}

// composeLogoLines joins glyphs horizontally, drawing '#' as full blocks.
func composeLogoLines(blocks [][]string) []string {
	out := make([]string, logoHeight)
	for row := 0; row < logoHeight; row++ {
		parts := make([]string, 0, len(blocks))
		for _, blk := range blocks {
			parts = append(parts, strings.ReplaceAll(blk[row], "#", "█"))
		}
		out[row] = strings.Join(parts, " ")
	}
	return out
}

// renderLogo centers the logo within width. Narrow screens get the plain
// wordmark instead.
func renderLogo(width int) string {
	lines := composeLogoLines(logoBlocks())
	if width <= 0 {
		width = 80
	}
	if xansi.StringWidth(lines[0]) >= width {
		return AccentBold().Render("CAID") + "\n"
	}
	var b strings.Builder
	for _, ln := range lines {
		pad := (width - xansi.StringWidth(ln)) / 2
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(AccentBold().Render(ln))
		b.WriteString("\n")
	}
	return b.String()
}
