package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"caid/internal/content"
	"caid/internal/system"
	"caid/internal/terminal"
)

// DefaultTimeout bounds every request.
const DefaultTimeout = 10 * time.Second

// Client talks to the caid backend under <BaseURL>/api.
type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
}

// New returns a client for baseURL with the default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: DefaultTimeout},
	}
}

// APIError is a non-2xx backend response.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

func (c *Client) CompanyInfo(ctx context.Context) (content.Company, error) {
	var out content.Company
	err := c.do(ctx, http.MethodGet, "/company/info", nil, &out)
	return out, err
}

func (c *Client) Roadmap(ctx context.Context) (content.Roadmap, error) {
	var out content.Roadmap
	err := c.do(ctx, http.MethodGet, "/roadmap", nil, &out)
	return out, err
}

func (c *Client) Team(ctx context.Context) (content.Team, error) {
	var out content.Team
	err := c.do(ctx, http.MethodGet, "/team", nil, &out)
	return out, err
}

// TrackCommand reports an executed command. Callers treat failures as
// non-fatal.
func (c *Client) TrackCommand(ctx context.Context, t content.CommandTrack) error {
	if t.UserAgent == "" {
		t.UserAgent = c.userAgent()
	}
	return c.do(ctx, http.MethodPost, "/analytics/command", t, nil)
}

// StatsEntry is one value of the /analytics/stats map.
type StatsEntry struct {
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

func (c *Client) Stats(ctx context.Context) (map[string]StatsEntry, error) {
	var out struct {
		Stats map[string]StatsEntry `json:"stats"`
	}
	err := c.do(ctx, http.MethodGet, "/analytics/stats", nil, &out)
	return out.Stats, err
}

func (c *Client) CreateInquiry(ctx context.Context, in content.InquiryCreate) (content.InquiryReceipt, error) {
	var out content.InquiryReceipt
	err := c.do(ctx, http.MethodPost, "/inquiries", in, &out)
	return out, err
}

func (c *Client) Inquiries(ctx context.Context) ([]content.Inquiry, error) {
	var out []content.Inquiry
	err := c.do(ctx, http.MethodGet, "/inquiries", nil, &out)
	return out, err
}

// CommandResponse is the /commands/{name} payload.
type CommandResponse struct {
	Command  string          `json:"command"`
	Response []terminal.Line `json:"response"`
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
}

func (c *Client) Command(ctx context.Context, name string) (CommandResponse, error) {
	var out CommandResponse
	err := c.do(ctx, http.MethodGet, "/commands/"+url.PathEscape(name), nil, &out)
	return out, err
}

func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return "caid-tui"
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	u := c.BaseURL + "/api" + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent())

	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	system.Logger.Debug("api request", "method", method, "path", path)
	resp, err := hc.Do(req)
	if err != nil {
		system.Logger.Debug("api request failed", "path", path, "err", err)
		return err
	}
	defer resp.Body.Close()
	system.Logger.Debug("api response", "status", resp.StatusCode, "path", path)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: detail(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// detail extracts {"detail": ...} or {"error": ...} from an error body.
func detail(raw []byte) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, k := range []string{"detail", "error", "message"} {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
			b, _ := json.Marshal(v)
			return string(b)
		}
	}
	return ""
}

// IsAPIError reports whether err is an APIError with the given status.
func IsAPIError(err error, status int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == status
}
