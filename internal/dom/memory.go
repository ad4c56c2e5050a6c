package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Geometry is the layout box of an element.
type Geometry struct {
	Top    float64
	Height float64
}

// Scroll records one viewport movement.
type Scroll struct {
	X, Y   float64
	Smooth bool
	Target string // element id, empty for ScrollTo
}

// MemoryDocument is a Document backed by a parsed html.Node tree. Layout
// does not exist outside a browser, so geometry is assigned explicitly.
type MemoryDocument struct {
	root     *html.Node
	elements map[*html.Node]*memElement
	geometry map[*html.Node]Geometry
	view     *Viewport
}

// Viewport is the in-memory Window paired with a MemoryDocument.
type Viewport struct {
	X, Y    float64
	History []Scroll
}

func (v *Viewport) ScrollY() float64 { return v.Y }

func (v *Viewport) ScrollTo(x, y float64) {
	v.X, v.Y = x, y
	v.History = append(v.History, Scroll{X: x, Y: y})
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*MemoryDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &MemoryDocument{
		root:     root,
		elements: make(map[*html.Node]*memElement),
		geometry: make(map[*html.Node]Geometry),
		view:     &Viewport{},
	}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*MemoryDocument, error) {
	return Parse(strings.NewReader(s))
}

// Window returns the document's viewport.
func (d *MemoryDocument) Window() *Viewport { return d.view }

// SetGeometry assigns layout to the element with the given id. It reports
// false when no such element exists.
func (d *MemoryDocument) SetGeometry(id string, g Geometry) bool {
	el, ok := d.GetElementByID(id)
	if !ok {
		return false
	}
	d.geometry[el.(*memElement).node] = g
	return true
}

func (d *MemoryDocument) GetElementByID(id string) (Element, bool) {
	if id == "" {
		return nil, false
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

// QuerySelector returns the first match. An invalid selector matches
// nothing, as a missing element would.
func (d *MemoryDocument) QuerySelector(selector string) (Element, bool) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, false
	}
	n := cascadia.Query(d.root, sel)
	if n == nil {
		return nil, false
	}
	return d.wrap(n), true
}

func (d *MemoryDocument) QuerySelectorAll(selector string) []Element {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(d.root, sel)
	out := make([]Element, len(nodes))
	for i, n := range nodes {
		out[i] = d.wrap(n)
	}
	return out
}

func (d *MemoryDocument) DocumentElement() Element {
	n := cascadia.Query(d.root, cascadia.MustCompile("html"))
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// Render writes the current tree back out as HTML.
func (d *MemoryDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *MemoryDocument) wrap(n *html.Node) *memElement {
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &memElement{doc: d, node: n}
	d.elements[n] = el
	return el
}

type memElement struct {
	doc  *MemoryDocument
	node *html.Node
}

func (e *memElement) ID() string      { return attr(e.node, "id") }
func (e *memElement) TagName() string { return strings.ToUpper(e.node.Data) }

func (e *memElement) Attr(name string) string { return attr(e.node, name) }

func (e *memElement) SetAttr(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *memElement) ClassList() ClassList { return classList{e} }

func (e *memElement) OffsetTop() float64    { return e.doc.geometry[e.node].Top }
func (e *memElement) ClientHeight() float64 { return e.doc.geometry[e.node].Height }

func (e *memElement) ScrollIntoView(smooth bool) {
	v := e.doc.view
	v.Y = e.OffsetTop()
	v.History = append(v.History, Scroll{X: v.X, Y: v.Y, Smooth: smooth, Target: e.ID()})
}

type classList struct{ el *memElement }

func (c classList) names() []string {
	return strings.Fields(c.el.Attr("class"))
}

func (c classList) Contains(name string) bool {
	for _, n := range c.names() {
		if n == name {
			return true
		}
	}
	return false
}

func (c classList) Add(name string) {
	if c.Contains(name) {
		return
	}
	c.el.SetAttr("class", strings.Join(append(c.names(), name), " "))
}

func (c classList) Remove(name string) {
	names := c.names()
	kept := names[:0]
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	c.el.SetAttr("class", strings.Join(kept, " "))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// walk visits nodes depth-first in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

var (
	_ Document = (*MemoryDocument)(nil)
	_ Window   = (*Viewport)(nil)
)
