package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/config"
	"github.com/riftlens/winreport/internal/export"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
	"github.com/riftlens/winreport/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the charts as static images",
	Long: `Draws every chart as a PNG or SVG file in the print palette, for use in
documents where the interactive page cannot be embedded.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringSlice("only", nil, "glob patterns selecting mount ids (e.g. 'feat*')")
	exportCmd.Flags().String("format", "", "image format: png or svg")
	exportCmd.Flags().String("lang", "", "chart language: en, ko or all")
	exportCmd.Flags().String("dir", "", "override the export directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if only, _ := cmd.Flags().GetStringSlice("only"); len(only) > 0 {
		cfg.Export.Only = only
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Export.Format = config.ExportFormat(format)
	}
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.Export.Dir = dir
	}
	lang := cfg.Export.Lang
	if l, _ := cmd.Flags().GetString("lang"); l != "" {
		lang = l
	}

	variants, err := exportVariants(lang)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pal := palette.Default()
	var list []charts.Mounted
	for _, v := range variants {
		if v == i18n.Korean {
			slog.Warn("the built-in plot fonts have no Hangul glyphs; korean titles may not render")
		}
		mounted, err := charts.BuildVariant(charts.NewBuilder(v, pal))
		if err != nil {
			return err
		}
		list = append(list, mounted...)
	}

	r, err := export.NewRenderer(pal, cfg.Export.WidthIn, cfg.Export.HeightIn, string(cfg.Export.Format))
	if err != nil {
		return err
	}
	e := &export.Exporter{
		Renderer: r,
		Dir:      cfg.Export.Dir,
		Filter:   export.Filter{Only: cfg.Export.Only},
		Reporter: progress.NewReporter("Exporting charts"),
		Logger:   slog.Default(),
	}
	paths, err := e.Export(cmd.Context(), list)
	if err != nil {
		return fmt.Errorf("exporting charts: %w", err)
	}
	fmt.Printf("Exported %d charts to %s\n", len(paths), cfg.Export.Dir)
	return nil
}

func exportVariants(lang string) ([]i18n.Variant, error) {
	switch lang {
	case config.ExportAllLangs:
		return i18n.Variants, nil
	case "":
		return []i18n.Variant{i18n.Default}, nil
	}
	if !i18n.IsKnown(lang) {
		return nil, fmt.Errorf("unknown export language %q (want en, ko or all)", lang)
	}
	return []i18n.Variant{i18n.Variant(lang)}, nil
}
