// Package resize implements per-target resize watching on top of a host
// environment's single viewport resize signal.
//
// Hosts typically expose a resize notification only for the top-level
// viewport. A Watcher bridges the gap: it keeps a registry of watched
// targets (individual elements or the viewport itself), installs one
// viewport listener the first time anything is watched, and re-checks
// every tracked target's dimensions after each burst of resize signals
// settles, invoking callbacks only for targets whose size actually
// changed.
//
// # Watching
//
// WatchViewport subscribes to the viewport: its callback fires on every
// settled tick, unconditionally. WatchTargets resolves a target
// description (selector string, element, element list, or nested
// sequences of those) against the document and creates one independent
// subscription per resolved element. Watch is the convenience entry
// point that routes between the two. Every watch call returns a
// CancelFunc that removes exactly the subscriptions it created and is
// safe to call more than once.
//
// # Debouncing
//
// Rapid-fire resize signals (a drag-resize) are coalesced by a
// single-slot trailing-edge debounce timer: each signal reschedules the
// timer, and the dispatch tick runs once per quiet period, a fixed delay
// after the last signal. The default window is roughly one animation
// frame.
//
// # Reentrancy
//
// The tick operates on a snapshot of the registry taken at tick start.
// Subscriptions created or cancelled from inside a callback take effect
// on subsequent ticks only.
//
// # Detection Limits
//
// The engine only reacts to viewport resize signals. Element resizes
// that are not correlated with a viewport resize (dynamic content,
// script-driven layout changes) are not detected.
package resize
