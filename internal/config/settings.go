package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names understood by caid.
const (
	EnvAPIURL      = "CAID_API_URL"
	EnvAddr        = "CAID_ADDR"
	EnvDBPath      = "CAID_DB_PATH"
	EnvContentFile = "CAID_CONTENT_FILE"
	EnvLogLevel    = "CAID_LOG_LEVEL"
	EnvLogFile     = "CAID_LOG_FILE"
)

const (
	DefaultAddr   = "127.0.0.1:8001"
	DefaultAPIURL = "http://" + DefaultAddr
)

// Settings is the resolved runtime configuration. Flags override these values
// in the cli package.
type Settings struct {
	APIURL      string
	Addr        string
	DBPath      string
	ContentFile string
	LogLevel    string
	LogFile     string
}

// LoadDotEnv reads the given .env files (default ".env") into the process
// environment. Missing files are skipped; existing variables win. The
// remaining files are still loaded when one of them is malformed, and the
// first parse error is returned.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var first error
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil && first == nil {
			first = fmt.Errorf("load %s: %w", f, err)
		}
	}
	return first
}

// FromEnv builds Settings from the environment with defaults applied.
func FromEnv() Settings {
	s := Settings{
		APIURL:      env(EnvAPIURL, DefaultAPIURL),
		Addr:        env(EnvAddr, DefaultAddr),
		DBPath:      env(EnvDBPath, ""),
		ContentFile: env(EnvContentFile, ""),
		LogLevel:    env(EnvLogLevel, "info"),
		LogFile:     env(EnvLogFile, ""),
	}
	if s.DBPath == "" {
		if p, err := DefaultDBPath(); err == nil {
			s.DBPath = p
		}
	}
	s.APIURL = strings.TrimRight(s.APIURL, "/")
	return s
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
