package charts

import (
	"fmt"

	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
)

const winRateMax = 100.0

// Builder turns chart kinds into specs for one language variant. Every
// input is explicit; two builders never share state.
type Builder struct {
	Variant i18n.Variant
	Pool    i18n.Pool
	Prefix  string
	Palette palette.Palette
}

// NewBuilder returns a builder using the variant's own pool and id prefix.
func NewBuilder(v i18n.Variant, pal palette.Palette) *Builder {
	return &Builder{
		Variant: v,
		Pool:    i18n.PoolFor(v),
		Prefix:  v.Prefix(),
		Palette: pal,
	}
}

// MountID returns the variant-qualified mount-point id for k.
func (b *Builder) MountID(k Kind) string {
	return b.Prefix + k.Mount()
}

// Title returns the localized chart title, used by the static export.
func (b *Builder) Title(k Kind) string {
	r, ok := recipes[k]
	if !ok {
		return string(k)
	}
	return b.Pool.T(r.title)
}

// Build constructs the spec for k.
func (b *Builder) Build(k Kind) (Spec, error) {
	r, ok := recipes[k]
	if !ok {
		return Spec{}, fmt.Errorf("unknown chart kind %q", k)
	}

	labels := r.literal
	if labels == nil {
		labels = b.Pool.List(r.labelKeys...)
	} else {
		labels = append([]string(nil), labels...)
	}
	values := append([]float64(nil), r.values...)

	colors := b.colors(r.colors, values)
	ds := Dataset{
		Label:           b.Pool.T(r.legendKey),
		Data:            values,
		BackgroundColor: colors,
	}
	if r.bordered {
		ds.BorderColor = append(Colors(nil), colors...)
		ds.BorderWidth = 1
	}

	spec := Spec{
		Type: "bar",
		Data: Data{
			Labels:   labels,
			Datasets: []Dataset{ds},
		},
		Options: Options{
			Plugins: Plugins{Legend: Legend{Display: false}},
		},
	}
	if k.IsWinRate() {
		upper := winRateMax
		spec.Options.Scales = map[string]*Scale{
			"y": {BeginAtZero: true, Max: &upper},
		}
	} else {
		spec.Options.IndexAxis = "y"
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, fmt.Errorf("building %s: %w", k, err)
	}
	return spec, nil
}

func (b *Builder) colors(p colorPolicy, values []float64) Colors {
	switch {
	case p.threshold != nil:
		return b.Palette.ResolveAll(palette.ColorsFor(values, *p.threshold))
	case p.uniform != "":
		return Colors{b.Palette.Resolve(p.uniform)}
	default:
		return b.Palette.ResolveAll(p.fixed)
	}
}
