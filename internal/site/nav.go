package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/riftlens/winreport/internal/i18n"
)

// NavItem is one in-page link of a variant's sidebar.
type NavItem struct {
	Href  string // "#" + qualified section id
	Label string
}

// Nav is the sidebar link list of one variant.
type Nav struct {
	Variant i18n.Variant
	Items   []NavItem
}

// BuildNav creates one link per section. Labels come from the "nav.<id>"
// key of the variant's text pool, falling back to the bare id.
func BuildNav(v i18n.Variant, sections []Section) Nav {
	pool := i18n.PoolFor(v)
	nav := Nav{Variant: v}
	for _, s := range sections {
		label := pool.T("nav." + s.ID)
		if label == "nav."+s.ID {
			label = formatSectionName(s.ID)
		}
		nav.Items = append(nav.Items, NavItem{Href: "#" + v.ID(s.ID), Label: label})
	}
	return nav
}

// ToHTML renders the list as <ul class="nav-links">. The link whose href
// equals activeHref carries the active class.
func (n Nav) ToHTML(activeHref string) string {
	var b strings.Builder
	b.WriteString(`<ul class="nav-links">` + "\n")
	for _, it := range n.Items {
		active := ""
		if it.Href == activeHref {
			active = ` class="active"`
		}
		fmt.Fprintf(&b, `<li><a href="%s"%s>%s</a></li>`+"\n", html.EscapeString(it.Href), active, html.EscapeString(it.Label))
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// formatSectionName title-cases a slug such as "feature-importance".
func formatSectionName(id string) string {
	words := strings.FieldsFunc(id, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
