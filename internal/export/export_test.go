package export

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
)

func englishCharts(t *testing.T) []charts.Mounted {
	t.Helper()
	list, err := charts.BuildVariant(charts.NewBuilder(i18n.English, palette.Default()))
	if err != nil {
		t.Fatalf("BuildVariant: %v", err)
	}
	return list
}

func TestFilter(t *testing.T) {
	tests := []struct {
		only  []string
		mount string
		want  bool
	}{
		{nil, "fbChart", true},
		{[]string{"feat*"}, "featLRChart", true},
		{[]string{"feat*"}, "fbChart", false},
		{[]string{"ko-*"}, "ko-fbChart", true},
		{[]string{"ko-*"}, "fbChart", false},
		{[]string{"kdaChart", "fb*"}, "fbChart", true},
		{[]string{"*Chart"}, "eliteMonstersChart", true},
	}
	for _, tt := range tests {
		f := Filter{Only: tt.only}
		if got := f.Match(tt.mount); got != tt.want {
			t.Errorf("Filter%v.Match(%q) = %v, want %v", tt.only, tt.mount, got, tt.want)
		}
	}
}

func TestFilterValidate(t *testing.T) {
	var perr *PatternError
	if err := (Filter{Only: []string{"feat[*"}}).Validate(); !errors.As(err, &perr) {
		t.Errorf("expected PatternError, got %v", err)
	}
	if err := (Filter{Only: []string{"feat*"}}).Validate(); err != nil {
		t.Errorf("valid pattern rejected: %v", err)
	}
}

func TestNewRendererRejectsBadInput(t *testing.T) {
	if _, err := NewRenderer(palette.Default(), 6, 4, "gif"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := NewRenderer(palette.Default(), 0, 4, PNG); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestPlotAxes(t *testing.T) {
	r, err := NewRenderer(palette.Default(), 6, 4, PNG)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range englishCharts(t) {
		p, err := r.Plot(m)
		if err != nil {
			t.Fatalf("Plot %s: %v", m.Mount, err)
		}
		if p.Title.Text != m.Title {
			t.Errorf("%s: title = %q, want %q", m.Mount, p.Title.Text, m.Title)
		}
		if m.Kind.IsWinRate() && (p.Y.Min != 0 || p.Y.Max != 100) {
			t.Errorf("%s: y range = [%v, %v], want [0, 100]", m.Mount, p.Y.Min, p.Y.Max)
		}
	}
}

func TestExportWritesFiles(t *testing.T) {
	for _, format := range []string{PNG, SVG} {
		t.Run(format, func(t *testing.T) {
			r, err := NewRenderer(palette.Default(), 4, 3, format)
			if err != nil {
				t.Fatal(err)
			}
			dir := t.TempDir()
			e := &Exporter{Renderer: r, Dir: dir, Filter: Filter{Only: []string{"fb*", "featLR*"}}}

			paths, err := e.Export(context.Background(), englishCharts(t))
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			want := []string{"fbChart", "featLRChart", "featLRCompChart"}
			if len(paths) != len(want) {
				t.Fatalf("paths = %v, want %d files", paths, len(want))
			}
			for i, mount := range want {
				if filepath.Base(paths[i]) != FileName(mount, format) {
					t.Errorf("path[%d] = %s, want %s", i, paths[i], FileName(mount, format))
				}
				info, err := os.Stat(paths[i])
				if err != nil {
					t.Fatalf("stat: %v", err)
				}
				if info.Size() == 0 {
					t.Errorf("%s is empty", paths[i])
				}
			}
		})
	}
}

func TestExportNoMatch(t *testing.T) {
	r, _ := NewRenderer(palette.Default(), 4, 3, PNG)
	e := &Exporter{Renderer: r, Dir: t.TempDir(), Filter: Filter{Only: []string{"pie*"}}}
	if _, err := e.Export(context.Background(), englishCharts(t)); err == nil {
		t.Error("expected error when nothing matches")
	}
}

func TestExportCancelled(t *testing.T) {
	r, _ := NewRenderer(palette.Default(), 4, 3, PNG)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := &Exporter{Renderer: r, Dir: t.TempDir()}
	if _, err := e.Export(ctx, englishCharts(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWriteToSVG(t *testing.T) {
	r, _ := NewRenderer(palette.Default(), 4, 3, SVG)
	var buf bytes.Buffer
	if err := r.WriteTo(&buf, englishCharts(t)[0]); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not svg")
	}
}

func TestParseColor(t *testing.T) {
	fallback := color.Gray{Y: 1}
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#c8aa6e", color.RGBA{R: 0xc8, G: 0xaa, B: 0x6e, A: 0xff}},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"rgba(255,255,255,0.1)", fallback},
		{"", fallback},
	}
	for _, tt := range tests {
		if got := parseColor(tt.in, fallback); got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
