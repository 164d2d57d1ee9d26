package content

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Catalog is the optional YAML content file used to seed the backend or to
// run the terminal offline. Empty sections fall back to the built-in defaults.
//
//	company:
//	  about: {name: ..., mission: ...}
//	milestones:
//	  - {target: SEP 2025, product: ..., status: ...}
type Catalog struct {
	Company    *Company    `json:"company,omitempty" yaml:"company"`
	Milestones []Milestone `json:"milestones,omitempty" yaml:"milestones"`
	Team       []Member    `json:"team,omitempty" yaml:"team"`
	Funding    *Funding    `json:"funding,omitempty" yaml:"funding"`
}

// DefaultCatalog returns the built-in content.
func DefaultCatalog() Catalog {
	c := DefaultCompany()
	f := DefaultFunding()
	return Catalog{
		Company:    &c,
		Milestones: DefaultMilestones(),
		Team:       DefaultTeam(),
		Funding:    &f,
	}
}

// LoadCatalog reads a catalog from path. An empty path or a missing file
// yields DefaultCatalog and no error.
func LoadCatalog(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return DefaultCatalog(), fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(b)
}

// ParseCatalog decodes YAML bytes and fills missing sections from defaults.
func ParseCatalog(b []byte) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(b, &cat); err != nil {
		return DefaultCatalog(), fmt.Errorf("parse catalog: %w", err)
	}
	cat.normalize()
	return cat, nil
}

func (c *Catalog) normalize() {
	def := DefaultCatalog()
	if c.Company == nil {
		c.Company = def.Company
	} else {
		fillCompany(c.Company, *def.Company)
	}
	if len(c.Milestones) == 0 {
		c.Milestones = def.Milestones
	}
	for i := range c.Milestones {
		if c.Milestones[i].Priority == 0 {
			c.Milestones[i].Priority = i + 1
		}
	}
	sort.SliceStable(c.Milestones, func(i, j int) bool { return c.Milestones[i].Priority < c.Milestones[j].Priority })
	if len(c.Team) == 0 {
		c.Team = def.Team
	}
	for i := range c.Team {
		if c.Team[i].DisplayOrder == 0 {
			c.Team[i].DisplayOrder = i + 1
		}
	}
	sort.SliceStable(c.Team, func(i, j int) bool { return c.Team[i].DisplayOrder < c.Team[j].DisplayOrder })
	if c.Funding == nil {
		c.Funding = def.Funding
	}
}

// fillCompany copies default values into blank fields.
func fillCompany(c *Company, def Company) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}
	set(&c.About.Name, def.About.Name)
	set(&c.About.Mission, def.About.Mission)
	set(&c.About.Description, def.About.Description)
	set(&c.About.Urgency, def.About.Urgency)
	set(&c.Contact.Email, def.Contact.Email)
	set(&c.Contact.Demo, def.Contact.Demo)
	set(&c.Contact.Pitch, def.Contact.Pitch)
	set(&c.System.Version, def.System.Version)
	set(&c.System.Status, def.System.Status)
	set(&c.System.WelcomeMessage, def.System.WelcomeMessage)
}

// Snapshot converts the catalog into the interpreter's data view.
func (c Catalog) Snapshot() Snapshot {
	s := Snapshot{
		Roadmap: &Roadmap{Milestones: append([]Milestone(nil), c.Milestones...)},
		Team:    &Team{Founders: append([]Member(nil), c.Team...)},
	}
	if c.Company != nil {
		co := *c.Company
		s.Company = &co
	}
	if c.Funding != nil {
		f := *c.Funding
		s.Funding = &f
	}
	return s
}

// Initials returns the first letter of every word in name, used as an
// avatar placeholder.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		if r != utf8.RuneError {
			b.WriteRune(r)
		}
	}
	return b.String()
}
