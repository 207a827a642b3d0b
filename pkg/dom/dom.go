package dom

// Element is a measurable target in the host environment.
// Size must reflect the current rendered dimensions on every call;
// implementations must not cache across calls.
type Element interface {
	Size() Size
}

// ElementList is a host-owned ordered collection of elements, analogous
// to a node list. It may be live (reflecting later mutations) or static.
type ElementList interface {
	// Len returns the number of elements in the collection.
	Len() int

	// At returns the element at index i, or nil if out of range.
	At(i int) Element
}

// Document resolves textual selectors against the host's element tree.
type Document interface {
	// Query returns all elements matching the selector, in document
	// order. An unknown or unmatched selector returns an empty slice.
	Query(selector string) []Element
}

// Viewport is the top-level window of the host environment. It is both
// measurable and the source of resize signals.
//
// Viewport's method set includes Element's, so a viewport value can be
// passed anywhere an Element is expected (notably to watch callbacks).
type Viewport interface {
	// Size returns the current viewport dimensions.
	Size() Size

	// Notify registers a listener invoked on every viewport resize
	// signal. Listeners are never unregistered; the engine installs
	// exactly one for its whole lifetime.
	Notify(listener func())
}
