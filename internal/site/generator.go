package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
)

// Options controls one site build.
type Options struct {
	OutputDir      string
	DefaultLang    i18n.Variant
	ChartJSURL     string
	HighlightStyle string
	// LiveReload makes the page connect to the preview server's reload socket.
	LiveReload bool
	// Content holds <variant>/*.md sources. Nil uses BuiltinContent.
	Content fs.FS
}

// Generator renders the bilingual report page and its assets.
type Generator struct {
	opts    Options
	palette palette.Palette
	logger  *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewGenerator creates a Generator. A nil logger uses slog.Default.
func NewGenerator(opts Options, pal palette.Palette, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if !i18n.IsKnown(string(opts.DefaultLang)) {
		opts.DefaultLang = i18n.Default
	}
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = "monokai"
	}
	if opts.Content == nil {
		opts.Content = BuiltinContent()
	}
	return &Generator{
		opts:    opts,
		palette: pal,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// pageData holds the data passed to the page template.
type pageData struct {
	Lang       string
	Title      string
	BuildID    string
	ChartJSURL string
	LiveReload bool
	SpecsJSON  template.JS
	Variants   []variantView
}

// variantView is one language wrapper of the page.
type variantView struct {
	Lang         string
	WrapperID    string
	Hidden       bool
	Title        string
	Subtitle     string
	Footer       string
	SwitchTarget string
	SwitchLabel  string
	NavHTML      template.HTML
	Sections     []sectionView

	mounts []string
}

type sectionView struct {
	ID      string
	Content template.HTML
}

// Generate builds the site into the output directory and returns its manifest.
func (g *Generator) Generate(ctx context.Context) (*Manifest, error) {
	bundle, err := charts.NewBundle(g.palette)
	if err != nil {
		return nil, fmt.Errorf("building charts: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(g.opts.HighlightStyle),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	m := &Manifest{
		BuildID:     g.newID(),
		BuiltAt:     g.now().UTC(),
		DefaultLang: g.opts.DefaultLang,
		Variants:    bundle.Order,
	}

	views := make([]variantView, 0, len(bundle.Order))
	for _, v := range bundle.Order {
		view, err := g.renderVariant(ctx, md, v)
		if err != nil {
			return nil, err
		}
		for _, k := range charts.Kinds {
			if !slices.Contains(view.mounts, v.ID(k.Mount())) {
				g.logger.Warn("chart has no mount point", "lang", v, "chart", k)
			}
		}
		m.Sections += len(view.Sections)
		m.Charts += len(view.mounts)
		views = append(views, view)
	}

	specs, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("marshaling chart specs: %w", err)
	}

	pool := i18n.PoolFor(g.opts.DefaultLang)
	data := pageData{
		Lang:       string(g.opts.DefaultLang),
		Title:      pool.T("page.title"),
		BuildID:    m.BuildID,
		ChartJSURL: g.opts.ChartJSURL,
		LiveReload: g.opts.LiveReload,
		SpecsJSON:  template.JS(specs),
		Variants:   views,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	if err := tmpl.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	pretty, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling chart specs: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{IndexFile, page.Bytes()},
		{StyleFile, []byte(cssContent)},
		{ScriptFile, []byte(jsContent)},
		{ChartsFile, pretty},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(g.opts.OutputDir, f.name), f.data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
		m.Files = append(m.Files, f.name)
		g.logger.Debug("wrote file", "file", f.name, "bytes", len(f.data))
	}

	m.Files = append(m.Files, ManifestFile)
	if err := WriteManifest(m, filepath.Join(g.opts.OutputDir, ManifestFile)); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	g.logger.Info("site generated",
		"dir", g.opts.OutputDir, "build", m.BuildID, "sections", m.Sections, "charts", m.Charts)
	return m, nil
}

// renderVariant converts one variant's sections and builds its wrapper view.
func (g *Generator) renderVariant(ctx context.Context, md goldmark.Markdown, v i18n.Variant) (variantView, error) {
	sections, err := LoadSections(g.opts.Content, v)
	if err != nil {
		return variantView{}, err
	}

	pool := i18n.PoolFor(v)
	view := variantView{
		Lang:         string(v),
		WrapperID:    v.WrapperID(),
		Hidden:       v != g.opts.DefaultLang,
		Title:        pool.T("page.title"),
		Subtitle:     pool.T("page.subtitle"),
		Footer:       pool.T("page.footer"),
		SwitchTarget: string(v.Other()),
		SwitchLabel:  pool.T("page.switch"),
	}

	label := pool.T("page.chart_label")
	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return view, err
		}

		var buf bytes.Buffer
		if err := md.Convert(s.Source, &buf); err != nil {
			return view, fmt.Errorf("converting %s: %w", s.File, err)
		}

		content, mounts, unknown := postProcessCharts(buf.String(), v, label)
		for _, name := range unknown {
			g.logger.Warn("unknown chart placeholder", "file", s.File, "chart", name)
		}
		content = wrapTables(content)

		view.Sections = append(view.Sections, sectionView{
			ID:      v.ID(s.ID),
			Content: template.HTML(content),
		})
		view.mounts = append(view.mounts, mounts...)
	}

	nav := BuildNav(v, sections)
	view.NavHTML = template.HTML(nav.ToHTML(nav.Items[0].Href))
	return view, nil
}
