package server

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"caid/internal/content"
	"caid/internal/terminal"
)

type siteData struct {
	Cmd        string
	Output     []terminal.Line
	Company    content.Company
	Milestones []content.Milestone
	Team       []content.Member
	Funding    content.Funding
	Highlights []string
	Footer     string
	Stats      []content.Stat
	Features   []content.Feature
}

// mountSiteGin serves the website view at / and answers every other
// non-API path with 404.
func mountSiteGin(r *gin.Engine, s *Server) {
	r.GET("/", s.siteHandler)
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}
		c.String(http.StatusNotFound, "not found")
	})
}

func (s *Server) siteHandler(c *gin.Context) {
	snap, err := s.snapshot(c.Request.Context())
	if err != nil {
		fail(c, "render_site", err)
		return
	}
	d := siteData{
		Cmd:        c.Query("cmd"),
		Company:    *snap.Company,
		Milestones: snap.Roadmap.Milestones,
		Team:       snap.Team.Founders,
		Funding:    content.DefaultFunding(),
		Highlights: content.InvestmentHighlights(),
		Footer:     content.FooterNote,
		Stats:      content.SiteStats(),
		Features:   content.SiteFeatures(),
	}
	if snap.Funding != nil {
		d.Funding = *snap.Funding
	}
	if cmd := terminal.Normalize(d.Cmd); cmd != "" {
		d.Output = siteOutput(cmd, snap)
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "site.html.tmpl", d); err != nil {
		fail(c, "render_site", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// siteOutput runs one command bar entry. The page is already the website
// view, so "terminal" points back at the TUI.
func siteOutput(cmd string, snap content.Snapshot) []terminal.Line {
	switch cmd {
	case "terminal":
		return []terminal.Line{{Kind: terminal.KindSystem, Text: "Returning to terminal mode... run `caid` to open the terminal."}}
	case "website":
		return []terminal.Line{{Kind: terminal.KindSystem, Text: "Already in website mode."}}
	}
	var out []terminal.Line
	for _, ln := range terminal.Respond(cmd, snap) {
		if ln.Kind == terminal.KindForm {
			ln = terminal.Line{Kind: terminal.KindSystem, Text: "See the contact section below."}
		}
		out = append(out, ln)
	}
	return out
}
