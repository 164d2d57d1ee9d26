package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"caid/internal/store"
	"caid/internal/system"
	"caid/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "address to bind (host:port; default $CAID_ADDR or 127.0.0.1:8001)")
	serveCmd.Flags().String("db", "", "SQLite database path (default $CAID_DB_PATH or the user config dir)")
	serveCmd.Flags().String("content", "", "YAML content catalog (default $CAID_CONTENT_FILE)")
	serveCmd.Flags().Bool("watch", false, "reload the content catalog when it changes")
	serveCmd.Flags().Bool("seed", false, "write the content catalog into empty tables on start")
	serveCmd.Flags().BoolP("open", "o", false, "open the website in the browser after start")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CAID backend API and website",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := flagOr(cmd, "addr", settings.Addr)
		dbPath := flagOr(cmd, "db", settings.DBPath)
		contentFile := flagOr(cmd, "content", settings.ContentFile)
		watch, _ := cmd.Flags().GetBool("watch")
		seed, _ := cmd.Flags().GetBool("seed")
		open, _ := cmd.Flags().GetBool("open")

		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		srv, err := server.New(addr, st, contentFile)
		if err != nil {
			return err
		}
		srv.Watch = watch

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if seed {
			n, err := st.Seed(ctx, srv.Catalog())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			system.Logger.Info("seeded content", "rows", n)
		}

		url := fmt.Sprintf("http://%s/", addr)
		system.Logger.Info("starting backend", "url", url, "db", dbPath)
		if open {
			if err := server.OpenBrowser(url); err != nil {
				system.Logger.Warn("failed to open browser", "err", err)
			}
		}
		return srv.Start(ctx)
	},
}

// flagOr returns the flag value when set, otherwise fallback.
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}
