package page

import (
	"github.com/riftlens/winreport/internal/dom"
	"github.com/riftlens/winreport/internal/i18n"
)

const HiddenClass = "hidden"

// Switcher toggles between the two language subtrees.
type Switcher struct {
	doc    dom.Document
	window dom.Window
}

func NewSwitcher(doc dom.Document, window dom.Window) *Switcher {
	return &Switcher{doc: doc, window: window}
}

// Switch shows the subtree for target and hides the other one. Any target
// other than the default token selects the alternate language. The
// document language is updated and the window returns to the top.
func (s *Switcher) Switch(target string) i18n.Variant {
	v := i18n.Parse(target)
	show, hide := i18n.English, i18n.Korean
	if v != i18n.English {
		show, hide = i18n.Korean, i18n.English
	}

	if el, ok := s.doc.GetElementByID(show.WrapperID()); ok {
		el.ClassList().Remove(HiddenClass)
	}
	if el, ok := s.doc.GetElementByID(hide.WrapperID()); ok {
		el.ClassList().Add(HiddenClass)
	}
	if root := s.doc.DocumentElement(); root != nil {
		root.SetAttr("lang", string(v))
	}

	s.window.ScrollTo(0, 0)
	return v
}

// ToggleSelector matches the language buttons. Each carries its target in
// data-lang.
const ToggleSelector = "[data-lang]"

// Registrations binds a click handler to every language button.
func (s *Switcher) Registrations() []Registration {
	buttons := s.doc.QuerySelectorAll(ToggleSelector)
	regs := make([]Registration, 0, len(buttons))
	for _, b := range buttons {
		button := b
		regs = append(regs, Registration{
			Event:    EventClick,
			Selector: ToggleSelector,
			Target:   button,
			Handler:  func(*Event) { s.Switch(button.Attr("data-lang")) },
		})
	}
	return regs
}
