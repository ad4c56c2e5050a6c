// Package dom describes the slice of the browser document that the page
// runtime touches, and provides an in-memory implementation parsed from
// HTML so handlers can run outside a browser.
package dom

// Element is a node the runtime can inspect and mutate.
type Element interface {
	ID() string
	TagName() string
	Attr(name string) string
	SetAttr(name, value string)
	ClassList() ClassList

	// OffsetTop and ClientHeight are layout geometry in CSS pixels.
	OffsetTop() float64
	ClientHeight() float64

	// ScrollIntoView brings the element to the top of the viewport.
	ScrollIntoView(smooth bool)
}

// ClassList mirrors DOMTokenList for the class attribute.
type ClassList interface {
	Add(name string)
	Remove(name string)
	Contains(name string) bool
}

// Document is element lookup over one page.
type Document interface {
	GetElementByID(id string) (Element, bool)
	QuerySelector(selector string) (Element, bool)
	QuerySelectorAll(selector string) []Element
	DocumentElement() Element
}

// Window is the viewport.
type Window interface {
	ScrollY() float64
	ScrollTo(x, y float64)
}
