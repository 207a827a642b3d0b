package resize

import "github.com/rstone770/resize/pkg/dom"

// subscription is one live registration in the registry.
type subscription struct {
	// handle is the unique, monotonically increasing identifier used
	// for removal.
	handle uint64

	// target is the watched element. nil marks a viewport subscription,
	// which fires on every tick without size comparison.
	target dom.Element

	// callback is invoked when a change is detected.
	callback Callback

	// lastSize is the size captured at watch time, then updated by the
	// dispatcher tick whenever a change is delivered. Meaningful only
	// for element targets.
	lastSize dom.Size

	// label describes the originating target for log events.
	label string
}

// registry is an insertion-ordered collection of subscriptions.
// Handles start at 0, increment by 1 per insert, and are never reused
// within the owning watcher's lifetime. The caller synchronizes access.
type registry struct {
	subs       []*subscription
	nextHandle uint64
}

// insert allocates the next handle, stores a new subscription, and
// returns the handle.
func (r *registry) insert(target dom.Element, callback Callback, last dom.Size, label string) uint64 {
	handle := r.nextHandle
	r.nextHandle++
	r.subs = append(r.subs, &subscription{
		handle:   handle,
		target:   target,
		callback: callback,
		lastSize: last,
		label:    label,
	})
	return handle
}

// remove drops every subscription whose handle is in handles and returns
// how many were removed. Relative order of the kept records is preserved.
func (r *registry) remove(handles map[uint64]struct{}) int {
	if len(handles) == 0 {
		return 0
	}

	kept := r.subs[:0]
	for _, sub := range r.subs {
		if _, drop := handles[sub.handle]; drop {
			continue
		}
		kept = append(kept, sub)
	}

	removed := len(r.subs) - len(kept)
	// Clear trailing slots so removed records (and their elements) are
	// not retained by the backing array.
	for i := len(kept); i < len(r.subs); i++ {
		r.subs[i] = nil
	}
	r.subs = kept
	return removed
}

// snapshot returns the live subscriptions in registry order. The returned
// slice is independent of later inserts and removals.
func (r *registry) snapshot() []*subscription {
	out := make([]*subscription, len(r.subs))
	copy(out, r.subs)
	return out
}

// len returns the number of live subscriptions.
func (r *registry) len() int {
	return len(r.subs)
}
