package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestLog(t *testing.T, events ...Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resize.log")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	for _, event := range events {
		logger.Log(event)
	}
	require.NoError(t, logger.Close())
	return path
}

func TestFileLoggerRoundTrip(t *testing.T) {
	now := time.Now()
	path := writeTestLog(t,
		Event{
			Timestamp: now,
			WatcherID: "watcher-1",
			Kind:      KindWatch,
			Watch:     &WatchEvent{Handle: 0, Target: ".box", Width: 100, Height: 50},
		},
		Event{
			Timestamp: now.Add(20 * time.Millisecond),
			WatcherID: "watcher-1",
			Kind:      KindTick,
			Tick:      &TickEvent{Live: 1},
		},
		Event{
			Timestamp: now.Add(21 * time.Millisecond),
			WatcherID: "watcher-1",
			Kind:      KindNotify,
			Notify:    &NotifyEvent{Handle: 0, Width: 120, Height: 50},
		},
	)

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, KindWatch, events[0].Kind)
	require.NotNil(t, events[0].Watch)
	assert.Equal(t, ".box", events[0].Watch.Target)

	assert.Equal(t, KindTick, events[1].Kind)
	require.NotNil(t, events[1].Tick)
	assert.Equal(t, 1, events[1].Tick.Live)

	assert.Equal(t, KindNotify, events[2].Kind)
	require.NotNil(t, events[2].Notify)
	assert.Equal(t, 120, events[2].Notify.Width)
}

func TestFilteredReader(t *testing.T) {
	now := time.Now()
	path := writeTestLog(t,
		Event{Timestamp: now, WatcherID: "a", Kind: KindSignal},
		Event{Timestamp: now, WatcherID: "b", Kind: KindSignal},
		Event{Timestamp: now, WatcherID: "a", Kind: KindTick, Tick: &TickEvent{Live: 2}},
	)

	kind := KindSignal
	reader, err := NewFilteredReader(path, Filter{WatcherID: "a", Kind: &kind})
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "a", events[0].WatcherID)
	assert.Equal(t, KindSignal, events[0].Kind)
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resize.log")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	// Logging after close is silently ignored.
	logger.Log(Event{Kind: KindSignal})

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}
