package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caid/internal/content"
	"caid/internal/store"
	"caid/internal/terminal"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "caid.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	s, err := New("", st, "")
	require.NoError(t, err)
	return s, s.Handler()
}

func call(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "server-test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)
	rec := call(t, h, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	decode(t, rec, &out)
	assert.Equal(t, "operational", out["status"])
	assert.Equal(t, healthMessage, out["message"])
}

func TestCompanyInfoDefaultIsNotPersisted(t *testing.T) {
	s, h := newTestServer(t)
	rec := call(t, h, http.MethodGet, "/api/company/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var co content.Company
	decode(t, rec, &co)
	assert.Equal(t, content.DefaultCompany().About.Name, co.About.Name)

	_, err := s.Store.CompanyInfo(t.Context())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRoadmapAndTeamSeedOnce(t *testing.T) {
	_, h := newTestServer(t)
	for i := 0; i < 2; i++ {
		rec := call(t, h, http.MethodGet, "/api/roadmap", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var rm content.Roadmap
		decode(t, rec, &rm)
		require.Len(t, rm.Milestones, len(content.DefaultMilestones()))
		assert.NotEmpty(t, rm.Milestones[0].ID)
		assert.Equal(t, "SEP 2025", rm.Milestones[0].Target)
	}
	for i := 0; i < 2; i++ {
		rec := call(t, h, http.MethodGet, "/api/team", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var team content.Team
		decode(t, rec, &team)
		require.Len(t, team.Founders, len(content.DefaultTeam()))
	}
}

func TestTrackAndStats(t *testing.T) {
	s, h := newTestServer(t)
	rt := 12
	for _, cmd := range []string{"help", "help", "about"} {
		rec := call(t, h, http.MethodPost, "/api/analytics/command", content.CommandTrack{
			Command: cmd, SessionID: "session_1", ResponseTime: &rt,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var out struct {
			Success bool  `json:"success"`
			Elapsed int64 `json:"processing_time_ms"`
		}
		// whole milliseconds; a fractional value would fail to decode
		decode(t, rec, &out)
		assert.True(t, out.Success)
		assert.GreaterOrEqual(t, out.Elapsed, int64(0))
	}

	rec := call(t, h, http.MethodGet, "/api/analytics/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Stats map[string]statEntry `json:"stats"`
	}
	decode(t, rec, &out)
	assert.Equal(t, 2, out.Stats["help"].Count)
	assert.Equal(t, 1, out.Stats["about"].Count)
	assert.False(t, out.Stats["help"].LastUsed.IsZero())

	stats, err := s.Store.CommandStats(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, stats)
}

func TestTrackRequiresCommandAndSession(t *testing.T) {
	_, h := newTestServer(t)
	rec := call(t, h, http.MethodPost, "/api/analytics/command", content.CommandTrack{Command: "help"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInquiryValidationAndStorage(t *testing.T) {
	_, h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/api/inquiries", content.InquiryCreate{Name: "Ada", Email: "nope", Message: "hi"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var bad struct {
		Detail map[string]string `json:"detail"`
	}
	decode(t, rec, &bad)
	assert.Contains(t, bad.Detail, "email")

	rec = call(t, h, http.MethodPost, "/api/inquiries", content.InquiryCreate{
		Name: "Ada", Email: "ada@example.com", Company: "Analytical", Message: "Interested", InquiryType: content.InquiryDemo,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var receipt content.InquiryReceipt
	decode(t, rec, &receipt)
	assert.True(t, receipt.Success)
	assert.Equal(t, "Inquiry submitted successfully", receipt.Message)
	assert.NotEmpty(t, receipt.ID)

	rec = call(t, h, http.MethodGet, "/api/inquiries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []content.Inquiry
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, receipt.ID, list[0].ID)
	assert.Equal(t, content.StatusNew, list[0].Status)
	assert.Equal(t, content.DefaultSource, list[0].Source)
	assert.Equal(t, content.InquiryDemo, list[0].InquiryType)

	rec = call(t, h, http.MethodGet, "/api/inquiries?limit=zero", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCommandEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	rec := call(t, h, http.MethodGet, "/api/commands/funding", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Command  string          `json:"command"`
		Response []terminal.Line `json:"response"`
		Success  bool            `json:"success"`
	}
	decode(t, rec, &out)
	assert.True(t, out.Success)
	require.NotEmpty(t, out.Response)
	assert.Equal(t, "Investment Opportunity:", out.Response[0].Text)

	rec = call(t, h, http.MethodGet, "/api/commands/bogus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &out)
	assert.False(t, out.Success)
	assert.Equal(t, terminal.KindError, out.Response[0].Kind)
	assert.Equal(t, "Command not found: bogus", out.Response[0].Text)
}

func TestCommandList(t *testing.T) {
	_, h := newTestServer(t)

	rec := call(t, h, http.MethodGet, "/api/commands", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Commands []terminal.Command `json:"commands"`
	}
	decode(t, rec, &out)
	require.NotEmpty(t, out.Commands)
	assert.Equal(t, "help", out.Commands[0].Name)
	assert.Equal(t, "Show this help message", out.Commands[0].Desc)
	last := out.Commands[len(out.Commands)-1]
	assert.Equal(t, "terminal", last.Name)
	assert.True(t, last.Hidden)
}

func TestTerminalSessions(t *testing.T) {
	s, h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/api/terminal/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var sess sessionView
	decode(t, rec, &sess)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "terminal", sess.Mode)
	require.NotEmpty(t, sess.History)

	rec = call(t, h, http.MethodPost, "/api/terminal/sessions/"+sess.ID+"/exec", execRequest{Input: "Website"})
	require.Equal(t, http.StatusOK, rec.Code)
	var ex execView
	decode(t, rec, &ex)
	assert.Equal(t, "website", ex.Command)
	assert.Equal(t, "website", ex.Mode)
	assert.True(t, ex.ModeChanged)

	rec = call(t, h, http.MethodPost, "/api/terminal/sessions/"+sess.ID+"/exec", execRequest{Input: "terminal"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &ex)
	assert.Equal(t, "terminal", ex.Mode)

	rec = call(t, h, http.MethodPost, "/api/terminal/sessions/missing/exec", execRequest{Input: "help"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	stats, err := s.Store.CommandStats(t.Context())
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}

func TestSessionTablePrunesIdle(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	tbl := newSessionTable(time.Minute)
	tbl.now = func() time.Time { return now }

	old := tbl.create(content.DefaultSnapshot())
	now = now.Add(2 * time.Minute)
	tbl.create(content.DefaultSnapshot())

	assert.Equal(t, 1, tbl.len())
	_, _, ok := tbl.exec(old.ID, "help")
	assert.False(t, ok)
}

func TestSitePage(t *testing.T) {
	_, h := newTestServer(t)

	rec := call(t, h, http.MethodGet, "/?cmd=help", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Website Mode - Type &#39;terminal&#39; to return")
	assert.Contains(t, body, "Available commands:")
	assert.Contains(t, body, "Development Roadmap")
	assert.Contains(t, body, "Sriram Saiteja")

	rec = call(t, h, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = call(t, h, http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReloadContentUpsertsCompany(t *testing.T) {
	s, h := newTestServer(t)
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company:\n  about:\n    name: Acme Detect\n"), 0o644))
	s.ContentFile = path

	require.NoError(t, s.reloadContent(t.Context()))

	rec := call(t, h, http.MethodGet, "/api/company/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var co content.Company
	decode(t, rec, &co)
	assert.Equal(t, "Acme Detect", co.About.Name)
	assert.Equal(t, content.DefaultCompany().Contact.Email, co.Contact.Email)
}
