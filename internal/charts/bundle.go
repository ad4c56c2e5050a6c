package charts

import (
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
)

// Mounted pairs a spec with the mount point it belongs to.
type Mounted struct {
	Mount string `json:"mount"`
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
	Spec  Spec   `json:"spec"`
}

// EngineDefaults are the global settings applied to the charting engine
// before any chart is created.
type EngineDefaults struct {
	Color       string `json:"color"`
	BorderColor string `json:"borderColor"`
}

// Bundle is every chart of the report, grouped by variant in page order.
// It is what the page embeds and what the preview API serves.
type Bundle struct {
	Defaults EngineDefaults             `json:"defaults"`
	Order    []i18n.Variant             `json:"order"`
	Variants map[i18n.Variant][]Mounted `json:"variants"`
}

// NewBundle builds all charts for all variants.
func NewBundle(pal palette.Palette) (*Bundle, error) {
	b := &Bundle{
		Defaults: EngineDefaults{Color: pal.Text, BorderColor: pal.Border},
		Order:    append([]i18n.Variant(nil), i18n.Variants...),
		Variants: make(map[i18n.Variant][]Mounted, len(i18n.Variants)),
	}
	for _, v := range i18n.Variants {
		list, err := BuildVariant(NewBuilder(v, pal))
		if err != nil {
			return nil, err
		}
		b.Variants[v] = list
	}
	return b, nil
}

// BuildVariant builds every kind with one builder, in page order.
func BuildVariant(b *Builder) ([]Mounted, error) {
	out := make([]Mounted, 0, len(Kinds))
	for _, k := range Kinds {
		spec, err := b.Build(k)
		if err != nil {
			return nil, err
		}
		out = append(out, Mounted{Mount: b.MountID(k), Kind: k, Title: b.Title(k), Spec: spec})
	}
	return out, nil
}

// Count returns the total number of charts across variants.
func (b *Bundle) Count() int {
	n := 0
	for _, list := range b.Variants {
		n += len(list)
	}
	return n
}
