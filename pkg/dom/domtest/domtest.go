// Package domtest provides an in-memory host environment for tests and
// simulations: elements with settable sizes, a selector-queryable
// document, and a viewport that fires resize signals on demand.
package domtest

import (
	"strings"
	"sync"

	"github.com/rstone770/resize/pkg/dom"
)

// Element is a fake measurable element with a name, optional tags, and a
// size that tests mutate directly.
type Element struct {
	mu   sync.Mutex
	name string
	tags []string
	size dom.Size
}

// NewElement creates an element with the given name and initial size.
func NewElement(name string, width, height int) *Element {
	return &Element{
		name: name,
		size: dom.Size{Width: width, Height: height},
	}
}

// Tag adds tags to the element and returns it, for chaining.
func (e *Element) Tag(tags ...string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tags = append(e.tags, tags...)
	return e
}

// Name returns the element's name.
func (e *Element) Name() string {
	return e.name
}

// Size returns the element's current size.
func (e *Element) Size() dom.Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.size
}

// SetSize changes the element's size. It does not fire any signal; pair
// with Viewport.Resize or Viewport.Fire to drive the engine.
func (e *Element) SetSize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.size = dom.Size{Width: width, Height: height}
}

func (e *Element) hasTag(tag string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, t := range e.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// List is a static dom.ElementList over a fixed set of elements.
type List struct {
	elements []dom.Element
}

// NewList creates a list over the given elements.
func NewList(elements ...dom.Element) *List {
	return &List{elements: elements}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.elements)
}

// At returns the element at index i, or nil if out of range.
func (l *List) At(i int) dom.Element {
	if i < 0 || i >= len(l.elements) {
		return nil
	}
	return l.elements[i]
}

// Document is a fake dom.Document over an ordered set of elements.
//
// Selectors: "#name" matches by exact name, ".tag" by tag, "*" matches
// everything, and bare text matches by name.
type Document struct {
	mu       sync.Mutex
	elements []*Element
}

// NewDocument creates a document containing the given elements, in order.
func NewDocument(elements ...*Element) *Document {
	return &Document{elements: elements}
}

// Add appends elements to the document.
func (d *Document) Add(elements ...*Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements = append(d.elements, elements...)
}

// Query returns all elements matching the selector, in document order.
func (d *Document) Query(selector string) []dom.Element {
	d.mu.Lock()
	elements := make([]*Element, len(d.elements))
	copy(elements, d.elements)
	d.mu.Unlock()

	var out []dom.Element
	for _, e := range elements {
		if matches(e, selector) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e *Element, selector string) bool {
	switch {
	case selector == "*":
		return true
	case strings.HasPrefix(selector, "#"):
		return e.Name() == selector[1:]
	case strings.HasPrefix(selector, "."):
		return e.hasTag(selector[1:])
	default:
		return e.Name() == selector
	}
}

// Viewport is a fake dom.Viewport whose size and resize signals are under
// test control.
type Viewport struct {
	mu        sync.Mutex
	size      dom.Size
	listeners []func()
}

// NewViewport creates a viewport with the given initial size.
func NewViewport(width, height int) *Viewport {
	return &Viewport{size: dom.Size{Width: width, Height: height}}
}

// Size returns the current viewport size.
func (v *Viewport) Size() dom.Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size
}

// Notify registers a resize listener.
func (v *Viewport) Notify(listener func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, listener)
}

// ListenerCount returns the number of registered listeners. Engines are
// expected to register exactly one, on the first watch.
func (v *Viewport) ListenerCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// SetSize changes the viewport size without firing a signal.
func (v *Viewport) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.size = dom.Size{Width: width, Height: height}
}

// Fire delivers one resize signal to every registered listener.
func (v *Viewport) Fire() {
	v.mu.Lock()
	listeners := make([]func(), len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Resize changes the viewport size and fires a resize signal.
func (v *Viewport) Resize(width, height int) {
	v.SetSize(width, height)
	v.Fire()
}

// Interface satisfaction checks.
var (
	_ dom.Element     = (*Element)(nil)
	_ dom.ElementList = (*List)(nil)
	_ dom.Document    = (*Document)(nil)
	_ dom.Viewport    = (*Viewport)(nil)
)
