package page

import (
	"github.com/riftlens/winreport/internal/dom"
	"github.com/riftlens/winreport/internal/palette"
)

// EventKind is a DOM event name.
type EventKind string

const (
	EventLoad   EventKind = "DOMContentLoaded"
	EventClick  EventKind = "click"
	EventScroll EventKind = "scroll"
)

// Event is the synthetic event passed to handlers.
type Event struct {
	Kind             EventKind
	Target           dom.Element
	defaultPrevented bool
}

func (e *Event) PreventDefault()        { e.defaultPrevented = true }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Registration binds one handler. Target is nil for window and document
// level handlers.
type Registration struct {
	Event    EventKind
	Selector string
	Target   dom.Element
	Handler  func(*Event)
}

// Runtime is the whole page wired against one document.
type Runtime struct {
	Doc      dom.Document
	Window   dom.Window
	Engine   Engine
	Palette  palette.Palette
	Tracker  *Tracker
	Switcher *Switcher

	registrations []Registration
	charts        int
}

// Boot runs the load sequence: charts for every variant, then the
// navigation and language listeners.
func Boot(doc dom.Document, window dom.Window, engine Engine, pal palette.Palette) (*Runtime, error) {
	rt := &Runtime{
		Doc:      doc,
		Window:   window,
		Engine:   engine,
		Palette:  pal,
		Tracker:  NewTracker(doc, window),
		Switcher: NewSwitcher(doc, window),
	}
	n, err := InitializeAll(doc, engine, pal)
	if err != nil {
		return nil, err
	}
	rt.charts = n
	rt.registrations = append(rt.Tracker.Registrations(), rt.Switcher.Registrations()...)
	return rt, nil
}

// Charts returns how many charts were created at load.
func (rt *Runtime) Charts() int { return rt.charts }

// Registrations returns the bound handlers in registration order.
func (rt *Runtime) Registrations() []Registration {
	return append([]Registration(nil), rt.registrations...)
}

// Dispatch delivers an event to every matching registration and returns
// the event after all handlers ran.
func (rt *Runtime) Dispatch(kind EventKind, target dom.Element) *Event {
	ev := &Event{Kind: kind, Target: target}
	for _, r := range rt.registrations {
		if r.Event != kind {
			continue
		}
		if r.Target != nil && r.Target != target {
			continue
		}
		r.Handler(ev)
	}
	return ev
}
