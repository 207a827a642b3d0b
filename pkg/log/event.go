package log

import "time"

// Event represents one observation captured by the resize engine.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// WatcherID uniquely identifies the owning watcher (UUID).
	WatcherID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Type-specific payload (at most one of these is set).
	Watch  *WatchEvent  `cbor:"4,keyasint,omitempty"` // watch established / cancelled
	Tick   *TickEvent   `cbor:"5,keyasint,omitempty"` // dispatcher tick
	Notify *NotifyEvent `cbor:"6,keyasint,omitempty"` // callback delivery
}

// Kind classifies the event type.
type Kind uint8

const (
	// KindWatch indicates a subscription was established.
	KindWatch Kind = 0
	// KindCancel indicates a subscription was cancelled.
	KindCancel Kind = 1
	// KindSignal indicates a viewport resize signal was received.
	KindSignal Kind = 2
	// KindTick indicates a debounced dispatch tick executed.
	KindTick Kind = 3
	// KindNotify indicates a subscriber callback was invoked.
	KindNotify Kind = 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWatch:
		return "WATCH"
	case KindCancel:
		return "CANCEL"
	case KindSignal:
		return "SIGNAL"
	case KindTick:
		return "TICK"
	case KindNotify:
		return "NOTIFY"
	default:
		return "UNKNOWN"
	}
}

// ParseKind returns the Kind for a name as produced by String.
// The second return value reports whether the name was recognized.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "WATCH":
		return KindWatch, true
	case "CANCEL":
		return KindCancel, true
	case "SIGNAL":
		return KindSignal, true
	case "TICK":
		return KindTick, true
	case "NOTIFY":
		return KindNotify, true
	default:
		return 0, false
	}
}

// WatchEvent carries subscription lifecycle details.
type WatchEvent struct {
	// Handle is the subscription handle.
	Handle uint64 `cbor:"1,keyasint"`

	// Viewport indicates a viewport subscription (no size tracking).
	Viewport bool `cbor:"2,keyasint,omitempty"`

	// Target describes the watched target (selector or element label).
	Target string `cbor:"3,keyasint,omitempty"`

	// Width and Height are the size captured at watch time.
	// Unused for viewport subscriptions.
	Width  int `cbor:"4,keyasint,omitempty"`
	Height int `cbor:"5,keyasint,omitempty"`
}

// TickEvent carries dispatch tick details.
type TickEvent struct {
	// Live is the number of live subscriptions visited by the tick.
	Live int `cbor:"1,keyasint"`
}

// NotifyEvent carries callback delivery details.
type NotifyEvent struct {
	// Handle is the subscription handle that fired.
	Handle uint64 `cbor:"1,keyasint"`

	// Viewport indicates the viewport subscription fired.
	Viewport bool `cbor:"2,keyasint,omitempty"`

	// Width and Height are the size reading that triggered the
	// notification. For viewport subscriptions this is the viewport
	// size at tick time.
	Width  int `cbor:"3,keyasint,omitempty"`
	Height int `cbor:"4,keyasint,omitempty"`
}
