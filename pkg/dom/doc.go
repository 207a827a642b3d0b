// Package dom abstracts the host rendering environment that the resize
// engine observes.
//
// The engine never talks to a concrete renderer directly. Instead it works
// against four small capabilities the host provides:
//
//   - Element: read a target's current rendered size
//   - ElementList: a host-owned collection of elements (live or static)
//   - Document: resolve a textual selector to matching elements
//   - Viewport: read the top-level size and register for resize signals
//
// # Target Resolution
//
// Resolve normalizes an arbitrary watch target (selector string, element,
// element list, or nested sequences of those) into a flat ordered slice of
// elements. Unsupported values resolve to an empty slice rather than an
// error, and no deduplication is performed: overlapping inputs yield
// duplicate entries, each tracked independently by the engine.
//
// # Implementations
//
// pkg/dom/domtest provides an in-memory host for tests and simulations.
// pkg/term provides a terminal-backed host where the viewport is the
// terminal window and elements are layout panes.
package dom
