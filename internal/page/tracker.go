package page

import (
	"strings"

	"github.com/riftlens/winreport/internal/dom"
)

const (
	ActiveClass = "active"

	AnchorSelector  = `a[href^="#"]`
	NavLinkSelector = ".nav-links a"
	SectionSelector = "section"
)

// SectionGeometry is the part of a section the scroll rule looks at.
type SectionGeometry struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the id of the last section, in document order,
// whose threshold top - height/3 has been passed by scrollY. It returns ""
// when no section qualifies.
func ActiveSection(sections []SectionGeometry, scrollY float64) string {
	current := ""
	for _, s := range sections {
		if scrollY >= s.Top-s.Height/3 {
			current = s.ID
		}
	}
	return current
}

// Tracker keeps the navigation links in sync with clicks and scrolling.
type Tracker struct {
	doc    dom.Document
	window dom.Window
}

// NewTracker returns a tracker over doc and window.
func NewTracker(doc dom.Document, window dom.Window) *Tracker {
	return &Tracker{doc: doc, window: window}
}

// Registrations lists the handlers the tracker needs bound: one click
// handler per in-page anchor and one scroll handler on the window.
func (t *Tracker) Registrations() []Registration {
	anchors := t.doc.QuerySelectorAll(AnchorSelector)
	regs := make([]Registration, 0, len(anchors)+1)
	for _, a := range anchors {
		anchor := a
		regs = append(regs, Registration{
			Event:    EventClick,
			Selector: AnchorSelector,
			Target:   anchor,
			Handler: func(ev *Event) {
				ev.PreventDefault()
				t.Click(anchor)
			},
		})
	}
	regs = append(regs, Registration{
		Event:    EventScroll,
		Selector: "window",
		Handler:  func(*Event) { t.Scroll() },
	})
	return regs
}

// Click scrolls to the anchor's fragment target and marks the anchor as
// the only active navigation link. A dangling fragment does nothing.
func (t *Tracker) Click(anchor dom.Element) {
	target, ok := t.doc.QuerySelector(anchor.Attr("href"))
	if !ok {
		return
	}
	target.ScrollIntoView(true)

	for _, l := range t.doc.QuerySelectorAll(NavLinkSelector) {
		l.ClassList().Remove(ActiveClass)
	}
	anchor.ClassList().Add(ActiveClass)
}

// Scroll recomputes the active section from the window position and marks
// every navigation link whose href contains its id. It returns that id.
func (t *Tracker) Scroll() string {
	sections := t.doc.QuerySelectorAll(SectionSelector)
	geo := make([]SectionGeometry, len(sections))
	for i, s := range sections {
		geo[i] = SectionGeometry{ID: s.Attr("id"), Top: s.OffsetTop(), Height: s.ClientHeight()}
	}
	current := ActiveSection(geo, t.window.ScrollY())

	for _, l := range t.doc.QuerySelectorAll(NavLinkSelector) {
		l.ClassList().Remove(ActiveClass)
		if strings.Contains(l.Attr("href"), current) {
			l.ClassList().Add(ActiveClass)
		}
	}
	return current
}
