package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"caid/internal/system"
	"caid/internal/ui"
)

// Options configures the TUI launch.
type Options struct {
	UI ui.Options
	// LogFile receives log output while the TUI owns the screen. Empty
	// discards it.
	LogFile string
}

// Start runs the TUI program and returns any error.
func Start(opts Options) error {
	restore, err := redirectLogs(opts.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	p := tea.NewProgram(ui.InitialModel(opts.UI), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// redirectLogs points the shared logger at path (or nowhere) and returns a
// func that restores stderr.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		system.Redirect(io.Discard)
		return func() { system.Redirect(os.Stderr) }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	system.Redirect(f)
	return func() {
		system.Redirect(os.Stderr)
		_ = f.Close()
	}, nil
}
