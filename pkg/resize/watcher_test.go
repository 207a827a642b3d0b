package resize

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstone770/resize/pkg/dom"
	"github.com/rstone770/resize/pkg/dom/domtest"
)

// testDebounce keeps the quiet period short so tests settle quickly.
const testDebounce = 10 * time.Millisecond

// settle waits long enough for a pending debounced tick to run.
func settle() {
	time.Sleep(150 * time.Millisecond)
}

// recorder collects callback invocations across goroutines.
type recorder struct {
	mu      sync.Mutex
	targets []dom.Element
}

func (r *recorder) callback(target dom.Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, target)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.targets)
}

func (r *recorder) target(i int) dom.Element {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.targets[i]
}

func newTestWatcher() (*Watcher, *domtest.Viewport, *domtest.Document, []*domtest.Element) {
	vp := domtest.NewViewport(800, 600)
	boxes := []*domtest.Element{
		domtest.NewElement("a", 100, 100).Tag("box"),
		domtest.NewElement("b", 100, 100).Tag("box"),
		domtest.NewElement("c", 100, 100).Tag("box"),
	}
	doc := domtest.NewDocument(boxes...)
	w := NewWithConfig(vp, doc, Config{DebounceWindow: testDebounce})
	return w, vp, doc, boxes
}

func TestWatchTargetsOneSubscriptionPerMatch(t *testing.T) {
	w, _, _, _ := newTestWatcher()

	var rec recorder
	cancel, err := w.WatchTargets(".box", rec.callback)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Count())

	cancel()
	assert.Equal(t, 0, w.Count())
}

func TestCancelIdempotent(t *testing.T) {
	w, vp, _, boxes := newTestWatcher()

	var rec recorder
	cancel, err := w.WatchTargets(".box", rec.callback)
	require.NoError(t, err)

	cancel()
	cancel() // second call is a no-op, not an error
	assert.Equal(t, 0, w.Count())

	// Removed callbacks never fire again.
	boxes[0].SetSize(500, 500)
	vp.Resize(1024, 768)
	settle()
	assert.Equal(t, 0, rec.count())
}

func TestViewportCallbackFiresEveryTick(t *testing.T) {
	w, vp, _, _ := newTestWatcher()

	var rec recorder
	_, err := w.WatchViewport(rec.callback)
	require.NoError(t, err)

	// No size change at all: the viewport callback still fires once per
	// settled tick.
	vp.Fire()
	settle()
	vp.Fire()
	settle()

	require.Equal(t, 2, rec.count())
	assert.Equal(t, dom.Element(vp), rec.target(0))
}

func TestElementCallbackFiresOnlyOnChange(t *testing.T) {
	w, vp, _, boxes := newTestWatcher()

	var rec recorder
	_, err := w.WatchTargets("#a", rec.callback)
	require.NoError(t, err)

	// Tick without a size change: nothing fires.
	vp.Fire()
	settle()
	assert.Equal(t, 0, rec.count())

	// Size change correlated with a viewport signal: one notification.
	boxes[0].SetSize(200, 100)
	vp.Resize(1024, 600)
	settle()
	require.Equal(t, 1, rec.count())
	assert.Equal(t, dom.Element(boxes[0]), rec.target(0))

	// Unchanged on the next tick: no further notification.
	vp.Fire()
	settle()
	assert.Equal(t, 1, rec.count())
}

func TestLastKnownSizeUpdatesOnDelivery(t *testing.T) {
	w, vp, _, boxes := newTestWatcher()

	var rec recorder
	_, err := w.WatchTargets("#a", rec.callback)
	require.NoError(t, err)

	boxes[0].SetSize(200, 100)
	vp.Fire()
	settle()
	require.Equal(t, 1, rec.count())

	// Returning to the original size is a change relative to the
	// updated last-known size, so it fires again.
	boxes[0].SetSize(100, 100)
	vp.Fire()
	settle()
	assert.Equal(t, 2, rec.count())
}

func TestOnlyChangedElementNotified(t *testing.T) {
	w, vp, _, boxes := newTestWatcher()

	var rec recorder
	_, err := w.WatchTargets(".box", rec.callback)
	require.NoError(t, err)

	// Only element #2 changes size across this resize.
	boxes[1].SetSize(50, 100)
	vp.Resize(640, 480)
	settle()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, dom.Element(boxes[1]), rec.target(0))
}

func TestOverlappingSelectorsIndependent(t *testing.T) {
	w, vp, _, boxes := newTestWatcher()

	var first, second recorder
	cancelFirst, err := w.WatchTargets(".box", first.callback)
	require.NoError(t, err)
	_, err = w.WatchTargets("#a", second.callback)
	require.NoError(t, err)

	// Same element, two independent subscriptions.
	assert.Equal(t, 4, w.Count())

	cancelFirst()
	assert.Equal(t, 1, w.Count())

	// The surviving subscription still fires.
	boxes[0].SetSize(300, 300)
	vp.Fire()
	settle()
	assert.Equal(t, 0, first.count())
	assert.Equal(t, 1, second.count())
}

func TestMissingSelectorIsSilent(t *testing.T) {
	w, vp, _, _ := newTestWatcher()

	var rec recorder
	cancel, err := w.WatchTargets(".missing", rec.callback)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Count())

	// The cancel capability is still returned and is a safe no-op.
	cancel()
	cancel()

	// Zero subscriptions were created, so nothing ever fires.
	vp.Resize(1024, 768)
	settle()
	assert.Equal(t, 0, rec.count())
}

func TestNilCallbackRejectedBeforeMutation(t *testing.T) {
	w, vp, _, _ := newTestWatcher()

	_, err := w.WatchTargets(".box", nil)
	assert.ErrorIs(t, err, ErrNilCallback)

	_, err = w.WatchViewport(nil)
	assert.ErrorIs(t, err, ErrNilCallback)

	// No partial subscription, no arming.
	assert.Equal(t, 0, w.Count())
	assert.False(t, w.Armed())
	assert.Equal(t, 0, vp.ListenerCount())
}

func TestWatchRoutesToViewport(t *testing.T) {
	w, vp, _, _ := newTestWatcher()

	var viaNil, viaViewport recorder
	_, err := w.Watch(nil, viaNil.callback)
	require.NoError(t, err)
	_, err = w.Watch(vp, viaViewport.callback)
	require.NoError(t, err)

	// Both are viewport subscriptions: they fire without any size change.
	vp.Fire()
	settle()
	assert.Equal(t, 1, viaNil.count())
	assert.Equal(t, 1, viaViewport.count())
}

func TestArmsOnceAndStaysArmed(t *testing.T) {
	w, vp, _, _ := newTestWatcher()

	var rec recorder
	cancelA, err := w.WatchTargets(".box", rec.callback)
	require.NoError(t, err)
	_, err = w.WatchViewport(rec.callback)
	require.NoError(t, err)

	// Exactly one listener regardless of how many watches exist.
	assert.Equal(t, 1, vp.ListenerCount())

	// Removing everything does not disarm.
	cancelA()
	assert.True(t, w.Armed())

	// Re-watching reuses the installed listener.
	_, err = w.WatchTargets(".box", rec.callback)
	require.NoError(t, err)
	assert.Equal(t, 1, vp.ListenerCount())
}

func TestEmptyResolutionDoesNotArm(t *testing.T) {
	w, vp, _, _ := newTestWatcher()

	_, err := w.WatchTargets(".missing", func(dom.Element) {})
	require.NoError(t, err)

	// No subscription was created, so the dispatcher stays idle.
	assert.False(t, w.Armed())
	assert.Equal(t, 0, vp.ListenerCount())
}

func TestDebounceCoalescesBurst(t *testing.T) {
	vp := domtest.NewViewport(800, 600)
	w := NewWithConfig(vp, nil, Config{DebounceWindow: 50 * time.Millisecond})

	var rec recorder
	_, err := w.WatchViewport(rec.callback)
	require.NoError(t, err)

	// A rapid burst of signals inside the debounce window yields a
	// single settled tick.
	for i := 0; i < 5; i++ {
		vp.Fire()
	}
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, rec.count())

	// A later, separate signal yields its own tick.
	vp.Fire()
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 2, rec.count())
}

func TestWatchLimit(t *testing.T) {
	vp := domtest.NewViewport(800, 600)
	doc := domtest.NewDocument(
		domtest.NewElement("a", 1, 1).Tag("box"),
		domtest.NewElement("b", 1, 1).Tag("box"),
	)
	w := NewWithConfig(vp, doc, Config{DebounceWindow: testDebounce, MaxWatches: 2})

	var rec recorder
	_, err := w.WatchViewport(rec.callback)
	require.NoError(t, err)

	// Two more would exceed the cap; nothing is created.
	_, err = w.WatchTargets(".box", rec.callback)
	assert.ErrorIs(t, err, ErrWatchLimitReached)
	assert.Equal(t, 1, w.Count())
}

func TestCancelDuringTickAffectsLaterTicks(t *testing.T) {
	w, vp, _, boxes := newTestWatcher()

	var rec recorder
	var cancel CancelFunc
	var once sync.Once
	cancel, err := w.WatchTargets("#a", func(target dom.Element) {
		rec.callback(target)
		// Cancelling from inside the callback must not deadlock.
		once.Do(cancel)
	})
	require.NoError(t, err)

	boxes[0].SetSize(200, 200)
	vp.Fire()
	settle()
	require.Equal(t, 1, rec.count())
	assert.Equal(t, 0, w.Count())

	// After the reentrant cancel, later ticks never fire it again.
	boxes[0].SetSize(300, 300)
	vp.Fire()
	settle()
	assert.Equal(t, 1, rec.count())
}

func TestWatchDuringTickFiresNextTick(t *testing.T) {
	w, vp, _, _ := newTestWatcher()

	var nested recorder
	var once sync.Once
	_, err := w.WatchViewport(func(dom.Element) {
		once.Do(func() {
			// A watch established mid-tick joins subsequent ticks.
			_, err := w.WatchViewport(nested.callback)
			if err != nil {
				t.Errorf("nested WatchViewport: %v", err)
			}
		})
	})
	require.NoError(t, err)

	vp.Fire()
	settle()
	assert.Equal(t, 0, nested.count())

	vp.Fire()
	settle()
	assert.Equal(t, 1, nested.count())
}
