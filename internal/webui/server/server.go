package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"caid/internal/content"
	"caid/internal/store"
	"caid/internal/system"
	webembed "caid/internal/webui/embed"
)

// Server is the CAID backend: JSON API for the terminal client plus the
// server-rendered website view.
type Server struct {
	Addr  string
	Store *store.Store
	// ContentFile is an optional YAML catalog; Watch re-reads it on change.
	ContentFile string
	Watch       bool

	mu      sync.RWMutex
	catalog content.Catalog
	seedMu  sync.Mutex
	tmpl    *template.Template
	terms   *sessionTable
}

// New builds a server over an open store. The catalog is loaded from
// contentFile when set, otherwise the built-in defaults are used.
func New(addr string, st *store.Store, contentFile string) (*Server, error) {
	cat, err := content.LoadCatalog(contentFile)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"initials":    content.Initials,
		"statusClass": statusClass,
	}).ParseFS(webembed.TemplatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Server{
		Addr:        addr,
		Store:       st,
		ContentFile: contentFile,
		catalog:     cat,
		tmpl:        tmpl,
		terms:       newSessionTable(sessionTTL),
	}, nil
}

// Catalog returns the catalog currently used for defaults.
func (s *Server) Catalog() content.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

func (s *Server) setCatalog(c content.Catalog) {
	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()
}

// Handler builds the gin engine with every route mounted.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	mountAPIGin(r, s)
	mountSiteGin(r, s)
	return r
}

func (s *Server) Start(ctx context.Context) error {
	if s.Watch && s.ContentFile != "" {
		if err := s.watchContent(ctx); err != nil {
			system.Logger.Warn("content watch disabled", "file", s.ContentFile, "err", err)
		}
	}

	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("caid backend listening", "addr", s.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// OpenBrowser tries to open a URL in the system browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	// Start without waiting; the browser outlives the server.
	return exec.Command(cmd, args...).Start()
}

func statusClass(status string) string {
	return strings.ToLower(strings.ReplaceAll(status, " ", "-"))
}
