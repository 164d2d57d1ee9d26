package system

import (
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// It prints to stderr with timestamps enabled.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "caid",
})

// SetLevel parses a level name (debug, info, warn, error) and applies it.
// Unknown or empty names leave the current level untouched.
func SetLevel(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		Logger.Warn("unknown log level", "level", name)
		return
	}
	Logger.SetLevel(lvl)
}

// Redirect sends log output to w. The TUI uses it to keep log lines off the
// alternate screen.
func Redirect(w io.Writer) {
	Logger.SetOutput(w)
}
