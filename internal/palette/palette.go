package palette

// ColorToken names a palette slot. Charts refer to tokens; a Palette
// resolves them to concrete CSS colors.
type ColorToken string

const (
	Gold    ColorToken = "gold"
	Accent  ColorToken = "accent"
	Loss    ColorToken = "loss"
	Success ColorToken = "success"
)

// Palette is the immutable color configuration handed to chart builders.
// The zero value is not useful; start from Default.
type Palette struct {
	Gold    string
	Accent  string
	Loss    string
	Success string

	// Chart.js global defaults.
	Text   string
	Border string

	// Print rendition used by the static export.
	Background string
	CardBG     string
	PrintText  string
	Grid       string
}

// Default returns the report palette.
func Default() Palette {
	return Palette{
		Gold:       "#c8aa6e",
		Accent:     "#0ac8b9",
		Loss:       "#ff4e50",
		Success:    "#2ecc71",
		Text:       "#a09b8c",
		Border:     "rgba(255,255,255,0.1)",
		Background: "#010a13",
		CardBG:     "#1e282d",
		PrintText:  "#f0e6d2",
		Grid:       "#463714",
	}
}

// Resolve maps a token to its CSS color. Unknown tokens resolve to the
// text color.
func (p Palette) Resolve(t ColorToken) string {
	switch t {
	case Gold:
		return p.Gold
	case Accent:
		return p.Accent
	case Loss:
		return p.Loss
	case Success:
		return p.Success
	default:
		return p.Text
	}
}

// ResolveAll maps each token in order.
func (p Palette) ResolveAll(tokens []ColorToken) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = p.Resolve(t)
	}
	return out
}

// Thresholds describes a two-way split: values strictly below Cut get
// Below, everything else gets AtOrAbove.
type Thresholds struct {
	Cut       float64
	Below     ColorToken
	AtOrAbove ColorToken
}

var (
	// SignSplit colors logistic-regression coefficients.
	SignSplit = Thresholds{Cut: 0, Below: Loss, AtOrAbove: Gold}
	// HalfSplit colors win rates around the 50% line.
	HalfSplit = Thresholds{Cut: 50, Below: Loss, AtOrAbove: Accent}
)

// ColorFor returns the token for a single value.
func ColorFor(value float64, th Thresholds) ColorToken {
	if value < th.Cut {
		return th.Below
	}
	return th.AtOrAbove
}

// ColorsFor applies ColorFor to every value.
func ColorsFor(values []float64, th Thresholds) []ColorToken {
	out := make([]ColorToken, len(values))
	for i, v := range values {
		out[i] = ColorFor(v, th)
	}
	return out
}
