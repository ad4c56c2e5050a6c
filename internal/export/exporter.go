package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/progress"
)

// Exporter writes a set of charts to a directory.
type Exporter struct {
	Renderer *Renderer
	Dir      string
	Filter   Filter
	Reporter progress.Reporter
	Logger   *slog.Logger
}

// Export renders every selected chart and returns the written paths in
// input order. It stops at the first failure or when ctx is done.
func (e *Exporter) Export(ctx context.Context, list []charts.Mounted) ([]string, error) {
	if err := e.Filter.Validate(); err != nil {
		return nil, err
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}

	var selected []charts.Mounted
	for _, m := range list {
		if e.Filter.Match(m.Mount) {
			selected = append(selected, m)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no charts match %v", e.Filter.Only)
	}

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, err
	}

	reporter.Start(len(selected))
	defer reporter.Finish()

	paths := make([]string, 0, len(selected))
	for i, m := range selected {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Join(e.Dir, FileName(m.Mount, e.Renderer.Format))
		if err := e.Renderer.Render(m, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		reporter.Update(i+1, m.Mount)
		logger.Debug("exported chart", "mount", m.Mount, "path", path)
	}
	return paths, nil
}
