package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"caid/internal/app"
	"caid/internal/client"
	"caid/internal/config"
	"caid/internal/content"
	"caid/internal/system"
	"caid/internal/ui"
)

var (
	flagAPI      string
	flagOffline  bool
	flagLogLevel string

	// settings is resolved once per invocation in PersistentPreRunE.
	settings config.Settings
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "backend base URL (default $"+config.EnvAPIURL+" or "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "serve content from the local catalog instead of the backend")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

var rootCmd = &cobra.Command{
	Use:   "caid",
	Short: "caid – CAID terminal landing site",
	Long:  "caid runs the CAID interactive terminal (TUI) and its backend API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dotenvErr := config.LoadDotEnv()
		settings = config.FromEnv()
		if flagAPI != "" {
			settings.APIURL = strings.TrimRight(flagAPI, "/")
		}
		if flagLogLevel != "" {
			settings.LogLevel = flagLogLevel
		}
		system.SetLevel(settings.LogLevel)
		if dotenvErr != nil {
			system.Logger.Warn("ignoring malformed .env", "err", dotenvErr)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		b, err := backend()
		if err != nil {
			return err
		}
		return app.Start(app.Options{
			UI:      ui.Options{Backend: b, Offline: flagOffline},
			LogFile: settings.LogFile,
		})
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// backend picks the HTTP client or, with --offline, the local catalog.
func backend() (ui.Backend, error) {
	if flagOffline {
		cat, err := content.LoadCatalog(settings.ContentFile)
		if err != nil {
			return nil, err
		}
		return client.Offline{Catalog: cat}, nil
	}
	return client.New(settings.APIURL), nil
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
