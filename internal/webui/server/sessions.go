package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"caid/internal/content"
	"caid/internal/system"
	"caid/internal/terminal"
)

// sessionTTL bounds how long an idle web terminal session is kept.
const sessionTTL = time.Hour

type termSession struct {
	sess     *terminal.Session
	lastSeen time.Time
}

// sessionTable holds server-side interpreter sessions for the web command bar.
type sessionTable struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]*termSession
}

func newSessionTable(ttl time.Duration) *sessionTable {
	return &sessionTable{ttl: ttl, now: time.Now, items: map[string]*termSession{}}
}

func (t *sessionTable) create(data content.Snapshot) *terminal.Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pruneLocked()
	s := terminal.NewSession("", data, false)
	t.items[s.ID] = &termSession{sess: s, lastSeen: t.now()}
	return s
}

// exec runs input in session id while holding the table lock, since
// terminal.Session is not safe for concurrent use.
func (t *sessionTable) exec(id, input string) (terminal.Result, []terminal.Line, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ts, ok := t.items[id]
	if !ok {
		return terminal.Result{}, nil, false
	}
	ts.lastSeen = t.now()
	res := ts.sess.Execute(input)
	return res, ts.sess.History(), true
}

func (t *sessionTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

func (t *sessionTable) pruneLocked() {
	cutoff := t.now().Add(-t.ttl)
	for id, ts := range t.items {
		if ts.lastSeen.Before(cutoff) {
			delete(t.items, id)
		}
	}
}

type sessionView struct {
	ID      string          `json:"id"`
	Mode    string          `json:"mode"`
	History []terminal.Line `json:"history"`
}

type execRequest struct {
	Input string `json:"input"`
}

type execView struct {
	Command     string          `json:"command"`
	Lines       []terminal.Line `json:"lines"`
	Mode        string          `json:"mode"`
	ModeChanged bool            `json:"mode_changed"`
	Cleared     bool            `json:"cleared"`
	Form        bool            `json:"form"`
	History     []terminal.Line `json:"history"`
}

func (s *Server) newTermHandler(c *gin.Context) {
	snap, err := s.snapshot(c.Request.Context())
	if err != nil {
		fail(c, "create_terminal_session", err)
		return
	}
	sess := s.terms.create(snap)
	c.JSON(http.StatusCreated, sessionView{ID: sess.ID, Mode: sess.Mode().String(), History: sess.History()})
}

func (s *Server) execTermHandler(c *gin.Context) {
	var in execRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	id := c.Param("id")
	start := time.Now()
	res, history, ok := s.terms.exec(id, in.Input)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Session not found"})
		return
	}
	if res.Command != "" {
		ms := int(time.Since(start).Milliseconds())
		_, err := s.Store.TrackCommand(c.Request.Context(), content.CommandEvent{
			Command:      res.Command,
			SessionID:    id,
			UserAgent:    c.GetHeader("User-Agent"),
			ResponseTime: &ms,
		})
		if err != nil {
			system.Logger.Warn("track command failed", "session", id, "err", err)
		}
	}
	c.JSON(http.StatusOK, execView{
		Command:     res.Command,
		Lines:       res.Lines,
		Mode:        res.Mode.String(),
		ModeChanged: res.ModeChanged,
		Cleared:     res.Cleared,
		Form:        res.Form,
		History:     history,
	})
}
