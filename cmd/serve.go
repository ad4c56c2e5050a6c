package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/riftlens/winreport/internal/config"
	"github.com/riftlens/winreport/internal/palette"
	"github.com/riftlens/winreport/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the report and serve it locally",
	Long: `Builds the report site and serves it with a preview API. With live reload
enabled, edits to the config file rebuild the site and reload open pages.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the server port")
	serveCmd.Flags().Bool("no-reload", false, "disable live reload")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Serve.Port = port
	}
	if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
		cfg.Serve.LiveReload = false
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := buildSite(ctx, cfg, cfg.Serve.LiveReload); err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Serve.Port,
		SiteDir:  cfg.OutputDir,
		AllowAll: cfg.Serve.AllowAll,
	}, palette.Default(), slog.Default())

	if cfg.Serve.LiveReload {
		if _, statErr := os.Stat(cfgFile); statErr == nil {
			unwatch, err := config.Watch(cfgFile, func(next *config.Config, err error) {
				rebuild(ctx, srv, cfg.OutputDir, next, err)
			})
			if err != nil {
				return err
			}
			defer unwatch()
		} else {
			slog.Info("no config file to watch, live reload only follows restarts", "config", cfgFile)
		}
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	fmt.Printf("Serving at http://localhost:%d (press Ctrl+C to stop)\n", cfg.Serve.Port)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving site: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// rebuild regenerates the site after a config change and tells open pages
// to reload. The site directory of a running server does not move.
func rebuild(ctx context.Context, srv *server.Server, siteDir string, next *config.Config, err error) {
	if err != nil {
		slog.Warn("config reload failed", "err", err)
		return
	}
	if err := next.Validate(); err != nil {
		slog.Warn("ignoring invalid config", "err", err)
		return
	}
	next.OutputDir = siteDir
	m, err := buildSite(ctx, next, true)
	if err != nil {
		slog.Error("rebuild failed", "err", err)
		return
	}
	n := srv.Hub().Reload(m.BuildID)
	slog.Info("site rebuilt", "build", m.BuildID, "pages_notified", n)
}
