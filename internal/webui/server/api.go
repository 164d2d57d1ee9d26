package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"caid/internal/content"
	"caid/internal/inquiry"
	"caid/internal/store"
	"caid/internal/system"
	"caid/internal/terminal"
	appver "caid/internal/version"
)

const healthMessage = "CAID Terminal Backend v1.0"

func mountAPIGin(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": healthMessage, "status": "operational"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})

	api.GET("/company/info", s.companyHandler)
	api.GET("/roadmap", s.roadmapHandler)
	api.GET("/team", s.teamHandler)

	api.POST("/analytics/command", s.trackHandler)
	api.GET("/analytics/stats", s.statsHandler)

	api.POST("/inquiries", s.createInquiryHandler)
	api.GET("/inquiries", s.listInquiriesHandler)

	api.GET("/commands", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"commands": terminal.Commands()})
	})
	api.GET("/commands/:name", s.commandHandler)

	api.POST("/terminal/sessions", s.newTermHandler)
	api.POST("/terminal/sessions/:id/exec", s.execTermHandler)
}

// fail logs err and answers with the generic 500 body.
func fail(c *gin.Context, op string, err error) {
	system.Logger.Error("request failed", "op", op, "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}

func (s *Server) companyHandler(c *gin.Context) {
	co, err := s.company(c.Request.Context())
	if err != nil {
		fail(c, "get_company_info", err)
		return
	}
	c.JSON(http.StatusOK, co)
}

func (s *Server) roadmapHandler(c *gin.Context) {
	ms, err := s.milestones(c.Request.Context())
	if err != nil {
		fail(c, "get_roadmap", err)
		return
	}
	c.JSON(http.StatusOK, content.Roadmap{Milestones: ms})
}

func (s *Server) teamHandler(c *gin.Context) {
	team, err := s.members(c.Request.Context())
	if err != nil {
		fail(c, "get_team", err)
		return
	}
	c.JSON(http.StatusOK, content.Team{Founders: team})
}

func (s *Server) trackHandler(c *gin.Context) {
	start := time.Now()
	var in content.CommandTrack
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if in.Command == "" || in.SessionID == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "command and session_id are required"})
		return
	}
	ua := in.UserAgent
	if ua == "" {
		ua = c.GetHeader("User-Agent")
	}
	_, err := s.Store.TrackCommand(c.Request.Context(), content.CommandEvent{
		Command:      in.Command,
		SessionID:    in.SessionID,
		UserAgent:    ua,
		ResponseTime: in.ResponseTime,
	})
	if err != nil {
		fail(c, "track_command", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"processing_time_ms": time.Since(start).Milliseconds(),
	})
}

type statEntry struct {
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

func (s *Server) statsHandler(c *gin.Context) {
	stats, err := s.Store.CommandStats(c.Request.Context())
	if err != nil {
		fail(c, "get_analytics_stats", err)
		return
	}
	out := make(map[string]statEntry, len(stats))
	for _, st := range stats {
		out[st.Command] = statEntry{Count: st.Count, LastUsed: st.LastUsed}
	}
	c.JSON(http.StatusOK, gin.H{"stats": out})
}

func (s *Server) createInquiryHandler(c *gin.Context) {
	var in content.InquiryCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	form := inquiry.FromRequest(in)
	if errs := form.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
		return
	}
	saved, err := s.Store.CreateInquiry(c.Request.Context(), form.Request())
	if err != nil {
		fail(c, "create_inquiry", err)
		return
	}
	system.Logger.Info("inquiry stored", "id", saved.ID, "type", saved.InquiryType)
	c.JSON(http.StatusOK, content.InquiryReceipt{
		Success: true,
		Message: "Inquiry submitted successfully",
		ID:      saved.ID,
	})
}

func (s *Server) listInquiriesHandler(c *gin.Context) {
	limit := store.DefaultInquiryLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	list, err := s.Store.Inquiries(c.Request.Context(), limit)
	if err != nil {
		fail(c, "get_inquiries", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) commandHandler(c *gin.Context) {
	name := c.Param("name")
	snap, err := s.snapshot(c.Request.Context())
	if err != nil {
		fail(c, "get_command_response", err)
		return
	}
	_, known := terminal.Lookup(name)
	c.JSON(http.StatusOK, gin.H{
		"command":  name,
		"response": terminal.Respond(name, snap),
		"success":  known,
	})
}

// company returns the stored company info, falling back to the catalog
// default without persisting it.
func (s *Server) company(ctx context.Context) (content.Company, error) {
	co, err := s.Store.CompanyInfo(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return *s.Catalog().Company, nil
	}
	return co, err
}

// milestones seeds the catalog milestones into an empty table.
func (s *Server) milestones(ctx context.Context) ([]content.Milestone, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	ms, err := s.Store.Milestones(ctx)
	if err != nil || len(ms) > 0 {
		return ms, err
	}
	for _, m := range s.Catalog().Milestones {
		saved, err := s.Store.CreateMilestone(ctx, m)
		if err != nil {
			return nil, err
		}
		ms = append(ms, saved)
	}
	return ms, nil
}

// members seeds the catalog team into an empty table.
func (s *Server) members(ctx context.Context) ([]content.Member, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	team, err := s.Store.Members(ctx)
	if err != nil || len(team) > 0 {
		return team, err
	}
	for _, m := range s.Catalog().Team {
		saved, err := s.Store.CreateMember(ctx, m)
		if err != nil {
			return nil, err
		}
		team = append(team, saved)
	}
	return team, nil
}

// snapshot gathers everything the interpreter reads.
func (s *Server) snapshot(ctx context.Context) (content.Snapshot, error) {
	co, err := s.company(ctx)
	if err != nil {
		return content.Snapshot{}, err
	}
	ms, err := s.milestones(ctx)
	if err != nil {
		return content.Snapshot{}, err
	}
	team, err := s.members(ctx)
	if err != nil {
		return content.Snapshot{}, err
	}
	return content.Snapshot{
		Company: &co,
		Roadmap: &content.Roadmap{Milestones: ms},
		Team:    &content.Team{Founders: team},
		Funding: s.Catalog().Snapshot().Funding,
	}, nil
}
