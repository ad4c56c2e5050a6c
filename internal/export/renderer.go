package export

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/palette"
)

// Supported output formats.
const (
	PNG = "png"
	SVG = "svg"
)

// FileName is the export file name for a mount point.
func FileName(mount, format string) string {
	return mount + "_static." + format
}

// Renderer draws chart specs as static images in the print palette.
type Renderer struct {
	Palette palette.Palette
	Width   vg.Length
	Height  vg.Length
	Format  string
}

// NewRenderer returns a renderer producing images of the given size in inches.
func NewRenderer(pal palette.Palette, widthIn, heightIn float64, format string) (*Renderer, error) {
	switch format {
	case PNG, SVG:
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if widthIn <= 0 || heightIn <= 0 {
		return nil, fmt.Errorf("invalid export size %gx%g", widthIn, heightIn)
	}
	return &Renderer{
		Palette: pal,
		Width:   vg.Length(widthIn) * vg.Inch,
		Height:  vg.Length(heightIn) * vg.Inch,
		Format:  format,
	}, nil
}

// Plot builds the gonum plot for one chart.
func (r *Renderer) Plot(m charts.Mounted) (*plot.Plot, error) {
	spec := m.Spec
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Mount, err)
	}
	if len(spec.Data.Datasets) == 0 {
		return nil, fmt.Errorf("%s: no datasets", m.Mount)
	}

	textColor := parseColor(r.Palette.PrintText, color.White)
	gridColor := parseColor(r.Palette.Grid, color.Gray{Y: 0x40})

	p := plot.New()
	p.Title.Text = m.Title
	p.Title.TextStyle.Color = textColor
	p.BackgroundColor = parseColor(r.Palette.CardBG, color.Black)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = textColor
		ax.Label.TextStyle.Color = textColor
		ax.Tick.Label.Color = textColor
		ax.Tick.LineStyle.Color = textColor
	}

	ds := spec.Data.Datasets[0]
	horizontal := spec.Horizontal()
	width := r.barWidth(len(ds.Data), horizontal)

	for i, v := range ds.Data {
		bar, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return nil, fmt.Errorf("%s: bar %d: %w", m.Mount, i, err)
		}
		bar.XMin = float64(i)
		bar.Horizontal = horizontal
		bar.Color = parseColor(ds.ColorAt(i), textColor)
		bar.LineStyle.Width = 0
		if len(ds.BorderColor) > 0 && ds.BorderWidth > 0 {
			bar.LineStyle.Width = vg.Points(float64(ds.BorderWidth))
			bar.LineStyle.Color = parseColor(ds.BorderColor[min(i, len(ds.BorderColor)-1)], textColor)
		}
		p.Add(bar)
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	if horizontal {
		grid.Horizontal.Width = 0
		p.NominalY(spec.Data.Labels...)
		p.X.Label.Text = ds.Label
	} else {
		grid.Vertical.Width = 0
		p.NominalX(spec.Data.Labels...)
		p.Y.Label.Text = ds.Label
	}
	p.Add(grid)

	if y := spec.ValueScale(); y != nil {
		if y.BeginAtZero {
			p.Y.Min = 0
		}
		if y.Max != nil {
			p.Y.Max = *y.Max
		}
	}

	if !horizontal {
		labels, err := r.valueLabels(ds.Data, spec.ValueScale() != nil, textColor)
		if err != nil {
			return nil, fmt.Errorf("%s: labels: %w", m.Mount, err)
		}
		p.Add(labels)
	}
	return p, nil
}

// Render draws m and saves it to path. The file type follows the extension.
func (r *Renderer) Render(m charts.Mounted, path string) error {
	p, err := r.Plot(m)
	if err != nil {
		return err
	}
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// WriteTo draws m in the renderer's format to w.
func (r *Renderer) WriteTo(w io.Writer, m charts.Mounted) error {
	p, err := r.Plot(m)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(r.Width, r.Height, r.Format)
	if err != nil {
		return fmt.Errorf("creating %s writer: %w", r.Format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func (r *Renderer) barWidth(n int, horizontal bool) vg.Length {
	span := r.Width
	if horizontal {
		span = r.Height
	}
	if n < 1 {
		n = 1
	}
	return span / vg.Length(n) * 0.5
}

// valueLabels places the value above each vertical bar, as a percentage
// when the chart plots win rates.
func (r *Renderer) valueLabels(values []float64, percent bool, c color.Color) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(values))
	text := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		if percent {
			text[i] = fmt.Sprintf("%.1f%%", v)
		} else {
			text[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = c
		labels.TextStyle[i].XAlign = draw.XCenter
	}
	labels.Offset = vg.Point{Y: vg.Points(3)}
	return labels, nil
}

// parseColor reads a #rrggbb or #rgb color. Anything else yields fallback.
func parseColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
