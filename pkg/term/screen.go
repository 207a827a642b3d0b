package term

import (
	"errors"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/rstone770/resize/pkg/dom"
)

// ErrNotATerminal is returned when the given file is not attached to a
// terminal.
var ErrNotATerminal = errors.New("not a terminal")

// Screen is a dom.Viewport over a terminal. Sizes are in character
// cells. It is safe for concurrent use.
type Screen struct {
	out *os.File

	mu        sync.Mutex
	listeners []func()
	watching  bool
	last      dom.Size
}

// NewScreen creates a Screen over the process's stdout terminal.
func NewScreen() (*Screen, error) {
	return NewScreenFile(os.Stdout)
}

// NewScreenFile creates a Screen over an arbitrary terminal file.
func NewScreenFile(f *os.File) (*Screen, error) {
	if !term.IsTerminal(int(f.Fd())) {
		return nil, ErrNotATerminal
	}
	return &Screen{out: f}, nil
}

// Size returns the terminal's current dimensions. The size is queried
// fresh on every call; if the query fails (e.g. the terminal went away)
// the last successful reading is returned.
func (s *Screen) Size() dom.Size {
	width, height, err := term.GetSize(int(s.out.Fd()))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		return s.last
	}
	s.last = dom.Size{Width: width, Height: height}
	return s.last
}

// Notify registers a resize listener. The first registration starts the
// platform resize watcher, which runs for the remainder of the process;
// listeners are never unregistered.
func (s *Screen) Notify(listener func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, listener)
	start := !s.watching
	s.watching = true
	s.mu.Unlock()

	if start {
		s.watchResize()
	}
}

// fire delivers one resize signal to every registered listener.
func (s *Screen) fire() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Compile-time interface satisfaction check.
var _ dom.Viewport = (*Screen)(nil)
