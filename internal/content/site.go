package content

// Stat is one headline number on the website about section.
type Stat struct {
	Value string
	Label string
}

// Feature is one capability card on the website about section.
type Feature struct {
	Title string
	Text  string
}

// Website copy shared by the HTML page and the TUI website view.
const (
	HeroTitle      = "Combat the $5.7T Synthetic Media Problem"
	HeroFallback   = "A deep-tech initiative solving the synthetic media crisis with cutting-edge detection technology."
	UrgencyDefault = "The problem is critical. The market is massive. The action is now."
	FooterNote     = "© 2025 CAID. Fighting synthetic media with advanced detection technology."
)

func SiteStats() []Stat {
	return []Stat{
		{Value: "$5.7T", Label: "Market Impact by 2030"},
		{Value: "90%", Label: "Detection Accuracy Target"},
		{Value: "1M+", Label: "Media Files Analyzed"},
	}
}

func SiteFeatures() []Feature {
	return []Feature{
		{Title: "Blockchain Trust", Text: "Distributed ledger system for community-verified authenticity"},
		{Title: "AI Detection", Text: "Advanced algorithms powered by extensive R&D"},
		{Title: "Community-Driven", Text: "Crowdsourced validation from trusted users"},
	}
}

// InvestmentHighlights is the bullet list of the website contact section.
func InvestmentHighlights() []string {
	return []string{
		"Building world-class R&D team",
		"Accelerating product development",
		"$5.7T market opportunity by 2030",
		"Partnership with leading accelerators",
	}
}
