//go:build windows

package term

import "time"

// watchResize polls for terminal size changes (no SIGWINCH on Windows)
// and fires a signal whenever the dimensions differ from the previous
// reading. The poller runs for the life of the process.
func (s *Screen) watchResize() {
	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()

		prev := s.Size()
		for range ticker.C {
			size := s.Size()
			if !size.Equal(prev) {
				prev = size
				s.fire()
			}
		}
	}()
}
