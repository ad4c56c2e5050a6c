package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/riftlens/winreport/internal/config"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
	"github.com/riftlens/winreport/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `winreport init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// siteOptions maps the config onto generator options.
func siteOptions(cfg *config.Config, liveReload bool) site.Options {
	opts := site.Options{
		OutputDir:      cfg.OutputDir,
		DefaultLang:    i18n.Parse(cfg.DefaultLang),
		ChartJSURL:     cfg.ChartJSURL,
		HighlightStyle: cfg.HighlightStyle,
		LiveReload:     liveReload,
	}
	if cfg.ContentDir != "" {
		opts.Content = os.DirFS(cfg.ContentDir)
	}
	return opts
}

// buildSite generates the site described by cfg.
func buildSite(ctx context.Context, cfg *config.Config, liveReload bool) (*site.Manifest, error) {
	g := site.NewGenerator(siteOptions(cfg, liveReload), palette.Default(), slog.Default())
	m, err := g.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generating site: %w", err)
	}
	return m, nil
}
