package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wasdex/config"
	"wasdex/storage"
	"wasdex/web"
)

var (
	servePort     int
	serveDBPath   string
	serveTemplate string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a local read-only server for the dashboard and archive",
	Long: `Start a local HTTP server that serves the dashboard page and JSON endpoints
over the archived report runs.

The server is read-only; it never triggers downloads or extraction.`,
	Example: `
  # Serve on the default port
  wasdex serve

  # Custom port, archive, and dashboard file
  wasdex serve --port 9090 --db ./wasdex.db --template ./index.html
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		dbPath := serveDBPath
		if dbPath == "" {
			dbPath = cfg.Database.Path
		}
		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		template := serveTemplate
		if template == "" {
			template = cfg.Publish.Template
		}

		addr := fmt.Sprintf("127.0.0.1:%d", servePort)
		server := &http.Server{
			Addr:    addr,
			Handler: web.NewServer(store, template),
		}

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		errs := make(chan error, 1)
		go func() {
			errs <- server.ListenAndServe()
		}()

		fmt.Printf("Serving dashboard on http://%s\n", addr)

		select {
		case err := <-errs:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-shutdown:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (localhost only)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Path to local SQLite archive (overrides database.path)")
	serveCmd.Flags().StringVar(&serveTemplate, "template", "", "Dashboard HTML path (overrides publish.template)")
}
