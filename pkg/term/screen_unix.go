//go:build !windows

package term

import (
	"os"
	"os/signal"
	"syscall"
)

// watchResize forwards SIGWINCH to the screen's listeners. The signal
// handler stays installed for the life of the process.
func (s *Screen) watchResize() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			s.fire()
		}
	}()
}
