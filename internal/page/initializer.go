// Package page holds the report's runtime behavior: binding charts to
// mount points, tracking the active section, and switching languages. The
// client script shipped with the site implements the same rules.
package page

import (
	"fmt"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/dom"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
)

// Engine draws a chart into a mount point. In the browser this role is
// played by Chart.js.
type Engine interface {
	Create(mount dom.Element, spec charts.Spec)
}

// Instance is one chart created by a RecordingEngine.
type Instance struct {
	MountID string
	Spec    charts.Spec
}

// RecordingEngine keeps every chart it is asked to create.
type RecordingEngine struct {
	Instances []Instance
}

func (e *RecordingEngine) Create(mount dom.Element, spec charts.Spec) {
	e.Instances = append(e.Instances, Instance{MountID: mount.ID(), Spec: spec})
}

// InitializeCharts builds and binds every chart whose variant-qualified
// mount point exists in doc. Missing mount points are skipped. It returns
// the number of charts created. Calling it twice for the same variant
// creates duplicate instances.
func InitializeCharts(doc dom.Document, engine Engine, b *charts.Builder) (int, error) {
	created := 0
	for _, k := range charts.Kinds {
		mount, ok := doc.GetElementByID(b.MountID(k))
		if !ok {
			continue
		}
		spec, err := b.Build(k)
		if err != nil {
			return created, fmt.Errorf("initializing %s: %w", b.MountID(k), err)
		}
		engine.Create(mount, spec)
		created++
	}
	return created, nil
}

// InitializeAll runs InitializeCharts once per variant, default first.
func InitializeAll(doc dom.Document, engine Engine, pal palette.Palette) (int, error) {
	total := 0
	for _, v := range i18n.Variants {
		n, err := InitializeCharts(doc, engine, charts.NewBuilder(v, pal))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
