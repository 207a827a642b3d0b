package resize

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rstone770/resize/pkg/dom"
	"github.com/rstone770/resize/pkg/log"
)

// Watch errors.
var (
	ErrNilCallback       = errors.New("nil callback")
	ErrWatchLimitReached = errors.New("maximum watches reached")
)

// DefaultDebounceWindow is the default trailing-edge debounce applied to
// viewport resize signals, roughly one animation frame.
const DefaultDebounceWindow = 16 * time.Millisecond

// Callback receives the target whose size changed. For viewport
// subscriptions the watcher's viewport is passed as the target.
type Callback func(target dom.Element)

// CancelFunc removes the subscriptions created by the originating watch
// call. It is idempotent: invocations after the first are no-ops.
type CancelFunc func()

// Config holds watcher configuration.
type Config struct {
	// DebounceWindow is the quiet period after the last viewport resize
	// signal before a dispatch tick runs. Values <= 0 select
	// DefaultDebounceWindow.
	DebounceWindow time.Duration

	// MaxWatches caps the number of live subscriptions (0 = unlimited).
	MaxWatches int

	// Logger receives observation events. nil disables logging.
	Logger log.Logger
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		DebounceWindow: DefaultDebounceWindow,
	}
}

// Watcher tracks size changes of individual elements and the viewport.
//
// A Watcher owns its registry and dispatcher state explicitly; create one
// per viewport and share it. The viewport listener is installed lazily on
// the first successful watch and is never uninstalled, even if every
// subscription is later cancelled.
type Watcher struct {
	id       string
	viewport dom.Viewport
	document dom.Document
	config   Config
	logger   log.Logger

	mu    sync.Mutex
	reg   registry
	armed bool
	timer *time.Timer

	// tickMu serializes dispatch ticks so callbacks never run
	// concurrently with each other.
	tickMu sync.Mutex
}

// New creates a watcher for the given viewport and document with default
// configuration. The viewport must not be nil; document may be nil if
// only elements and the viewport itself are ever watched.
func New(viewport dom.Viewport, document dom.Document) *Watcher {
	return NewWithConfig(viewport, document, DefaultConfig())
}

// NewWithConfig creates a watcher with custom configuration.
func NewWithConfig(viewport dom.Viewport, document dom.Document, config Config) *Watcher {
	if config.DebounceWindow <= 0 {
		config.DebounceWindow = DefaultDebounceWindow
	}
	logger := config.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Watcher{
		id:       uuid.NewString(),
		viewport: viewport,
		document: document,
		config:   config,
		logger:   logger,
	}
}

// ID returns the watcher's unique identifier, as tagged in log events.
func (w *Watcher) ID() string {
	return w.id
}

// Count returns the number of live subscriptions.
func (w *Watcher) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reg.len()
}

// Armed reports whether the viewport listener has been installed.
// Once armed, a watcher stays armed for its whole lifetime.
func (w *Watcher) Armed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.armed
}

// Watch subscribes callback to size changes of target. A nil target or
// the watcher's own viewport selects the viewport subscription; any
// other value is resolved against the document (see dom.Resolve).
func (w *Watcher) Watch(target any, callback Callback) (CancelFunc, error) {
	if target == nil {
		return w.WatchViewport(callback)
	}
	if vp, ok := target.(dom.Viewport); ok && vp == w.viewport {
		return w.WatchViewport(callback)
	}
	return w.WatchTargets(target, callback)
}

// WatchViewport subscribes callback to viewport resizes. The callback
// fires on every settled tick, unconditionally: there is no stored size
// to compare for the viewport.
func (w *Watcher) WatchViewport(callback Callback) (CancelFunc, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}

	w.mu.Lock()
	if w.config.MaxWatches > 0 && w.reg.len() >= w.config.MaxWatches {
		w.mu.Unlock()
		return nil, ErrWatchLimitReached
	}
	handle := w.reg.insert(nil, callback, dom.Size{}, "viewport")
	install := w.armLocked()
	w.mu.Unlock()

	if install {
		w.viewport.Notify(w.signal)
	}

	w.observe(log.Event{
		Kind:  log.KindWatch,
		Watch: &log.WatchEvent{Handle: handle, Viewport: true},
	})
	return w.cancelFunc([]uint64{handle}, true), nil
}

// WatchTargets resolves target against the document and creates one
// independent subscription per resolved element, each with its own
// last-known size captured before the first tick can run.
//
// An empty resolution (no matches, unsupported target value) creates
// zero subscriptions and is not an error; the returned CancelFunc is a
// safe no-op.
func (w *Watcher) WatchTargets(target any, callback Callback) (CancelFunc, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}

	elements := dom.Resolve(w.document, target)
	label := targetLabel(target)

	// Capture each element's size now, synchronously, so the first tick
	// compares against the dimensions seen at watch time.
	sizes := make([]dom.Size, len(elements))
	for i, el := range elements {
		sizes[i] = el.Size()
	}

	w.mu.Lock()
	if w.config.MaxWatches > 0 && w.reg.len()+len(elements) > w.config.MaxWatches {
		w.mu.Unlock()
		return nil, ErrWatchLimitReached
	}
	handles := make([]uint64, len(elements))
	for i, el := range elements {
		handles[i] = w.reg.insert(el, callback, sizes[i], label)
	}
	install := len(handles) > 0 && w.armLocked()
	w.mu.Unlock()

	if install {
		w.viewport.Notify(w.signal)
	}

	for i, handle := range handles {
		w.observe(log.Event{
			Kind: log.KindWatch,
			Watch: &log.WatchEvent{
				Handle: handle,
				Target: label,
				Width:  sizes[i].Width,
				Height: sizes[i].Height,
			},
		})
	}
	return w.cancelFunc(handles, false), nil
}

// armLocked marks the dispatcher armed and reports whether the caller
// must install the viewport listener. The transition happens exactly
// once per watcher lifetime; there is no disarm.
func (w *Watcher) armLocked() bool {
	if w.armed {
		return false
	}
	w.armed = true
	return true
}

// signal is the viewport resize listener. Each signal reschedules the
// single-slot debounce timer, so the tick runs once per quiet period
// with at most one tick pending at a time.
func (w *Watcher) signal() {
	w.observe(log.Event{Kind: log.KindSignal})

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		w.timer = time.AfterFunc(w.config.DebounceWindow, w.tick)
		return
	}
	w.timer.Reset(w.config.DebounceWindow)
}

// tick re-checks every subscription captured at tick start. Viewport
// subscriptions fire unconditionally; element subscriptions fire only
// when the fresh measurement differs componentwise from the stored
// last-known size, which is updated on delivery. Subscriptions created
// or cancelled from inside a callback take effect on later ticks.
func (w *Watcher) tick() {
	w.tickMu.Lock()
	defer w.tickMu.Unlock()

	w.mu.Lock()
	subs := w.reg.snapshot()
	w.mu.Unlock()

	w.observe(log.Event{
		Kind: log.KindTick,
		Tick: &log.TickEvent{Live: len(subs)},
	})

	for _, sub := range subs {
		if sub.target == nil {
			size := w.viewport.Size()
			sub.callback(w.viewport)
			w.observe(log.Event{
				Kind: log.KindNotify,
				Notify: &log.NotifyEvent{
					Handle:   sub.handle,
					Viewport: true,
					Width:    size.Width,
					Height:   size.Height,
				},
			})
			continue
		}

		size := sub.target.Size()
		if size.Equal(sub.lastSize) {
			continue
		}
		sub.lastSize = size
		sub.callback(sub.target)
		w.observe(log.Event{
			Kind: log.KindNotify,
			Notify: &log.NotifyEvent{
				Handle: sub.handle,
				Width:  size.Width,
				Height: size.Height,
			},
		})
	}
}

// cancelFunc builds the unsubscribe capability for the given handle set.
func (w *Watcher) cancelFunc(handles []uint64, viewport bool) CancelFunc {
	var once sync.Once
	return func() {
		once.Do(func() {
			if len(handles) == 0 {
				return
			}
			drop := make(map[uint64]struct{}, len(handles))
			for _, handle := range handles {
				drop[handle] = struct{}{}
			}

			w.mu.Lock()
			w.reg.remove(drop)
			w.mu.Unlock()

			for _, handle := range handles {
				w.observe(log.Event{
					Kind:  log.KindCancel,
					Watch: &log.WatchEvent{Handle: handle, Viewport: viewport},
				})
			}
		})
	}
}

// observe stamps and forwards an event to the configured logger.
func (w *Watcher) observe(event log.Event) {
	if _, disabled := w.logger.(log.NoopLogger); disabled {
		return
	}
	event.Timestamp = time.Now()
	event.WatcherID = w.id
	w.logger.Log(event)
}

// targetLabel renders a watch target for log events.
func targetLabel(target any) string {
	switch v := target.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%T", target)
	}
}
