package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/i18n"
)

// postProcessCharts converts <div data-chart="kind"></div> placeholders into
// canvas mount points qualified for variant v. It returns the rewritten HTML,
// the mount ids it placed, and any placeholder names that are not a known
// chart kind. Unknown placeholders are dropped.
func postProcessCharts(content string, v i18n.Variant, label string) (string, []string, []string) {
	const openTag = `<div data-chart="`
	const closeTag = `"></div>`

	var (
		b       strings.Builder
		mounts  []string
		unknown []string
	)
	remaining := content
	for {
		idx := strings.Index(remaining, openTag)
		if idx == -1 {
			b.WriteString(remaining)
			break
		}
		endIdx := strings.Index(remaining[idx:], closeTag)
		if endIdx == -1 {
			b.WriteString(remaining)
			break
		}
		endIdx += idx

		name := remaining[idx+len(openTag) : endIdx]
		b.WriteString(remaining[:idx])
		if k, ok := charts.ParseKind(name); ok {
			id := v.ID(k.Mount())
			fmt.Fprintf(&b, `<div class="chart-container"><canvas id="%s" role="img" aria-label="%s"></canvas></div>`,
				id, html.EscapeString(label))
			mounts = append(mounts, id)
		} else {
			unknown = append(unknown, name)
		}
		remaining = remaining[endIdx+len(closeTag):]
	}
	return b.String(), mounts, unknown
}

// wrapTables puts rendered markdown tables in a scroll container so wide
// tables do not push the layout on narrow screens.
func wrapTables(content string) string {
	content = strings.ReplaceAll(content, "<table>", `<div class="table-wrap"><table>`)
	return strings.ReplaceAll(content, "</table>", "</table></div>")
}
