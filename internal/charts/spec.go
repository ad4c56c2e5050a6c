package charts

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when a dataset does not line up with the labels.
var ErrLengthMismatch = errors.New("dataset length does not match labels")

// Spec is a declarative chart configuration in the shape Chart.js expects.
type Spec struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the category labels and the series drawn against them.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one named series. Colors are either one per point or a single
// entry applied to every bar.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor Colors    `json:"backgroundColor"`
	BorderColor     Colors    `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
}

// Colors is a color list. A single entry encodes as a plain string so the
// engine applies it to every bar.
type Colors []string

func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

func (c *Colors) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*c = Colors{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

// Options covers the subset of Chart.js options the report uses.
type Options struct {
	IndexAxis string            `json:"indexAxis,omitempty"`
	Plugins   Plugins           `json:"plugins"`
	Scales    map[string]*Scale `json:"scales,omitempty"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Display bool `json:"display"`
}

// Scale configures one axis. A nil Max means auto-scaling.
type Scale struct {
	BeginAtZero bool     `json:"beginAtZero"`
	Max         *float64 `json:"max,omitempty"`
}

// Horizontal reports whether bars run along the x axis.
func (s Spec) Horizontal() bool {
	return s.Options.IndexAxis == "y"
}

// ValueScale returns the fixed value axis, or nil when the chart auto-scales.
func (s Spec) ValueScale() *Scale {
	if s.Options.Scales == nil {
		return nil
	}
	return s.Options.Scales["y"]
}

// ColorAt returns the background color of point i in dataset d.
func (d Dataset) ColorAt(i int) string {
	switch len(d.BackgroundColor) {
	case 0:
		return ""
	case 1:
		return d.BackgroundColor[0]
	}
	if i < len(d.BackgroundColor) {
		return d.BackgroundColor[i]
	}
	return ""
}

// Validate checks that every dataset has one value per label and that
// per-point color lists line up too.
func (s Spec) Validate() error {
	if s.Type == "" {
		return fmt.Errorf("chart type is required")
	}
	n := len(s.Data.Labels)
	for i, ds := range s.Data.Datasets {
		if len(ds.Data) != n {
			return fmt.Errorf("dataset %d (%s): %d values for %d labels: %w", i, ds.Label, len(ds.Data), n, ErrLengthMismatch)
		}
		if c := len(ds.BackgroundColor); c > 1 && c != n {
			return fmt.Errorf("dataset %d (%s): %d colors for %d labels: %w", i, ds.Label, c, n, ErrLengthMismatch)
		}
	}
	return nil
}
