// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spinner renders a rotating progress glyph on one terminal line
// while a blocking call runs. The indicator is a pure side channel: it
// never alters the result of the call it decorates, and it clears its line
// on every exit path.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"
)

const (
	glyphs = `|/-\`

	// tick is the render interval.
	tick = 100 * time.Millisecond

	// joinWait bounds how long teardown waits for the worker to observe
	// the stop flag before clearing the line anyway.
	joinWait = 200 * time.Millisecond

	minClearWidth = 40
)

// indicator is the shared state between the foreground and the render
// worker. The running flag is the only mutable shared value: the
// foreground writes it once at stop, the worker polls it every tick.
type indicator struct {
	w       io.Writer
	message string
	running atomic.Bool
	done    chan struct{}
}

func (s *indicator) start() {
	s.running.Store(true)
	go s.loop()
}

func (s *indicator) loop() {
	defer close(s.done)
	for i := 0; s.running.Load(); i++ {
		fmt.Fprintf(s.w, "\r%s... %c", s.message, glyphs[i%len(glyphs)])
		time.Sleep(tick)
	}
}

func (s *indicator) stop() {
	s.running.Store(false)
	select {
	case <-s.done:
	case <-time.After(joinWait):
	}
	width := len(s.message) + 8
	if width < minClearWidth {
		width = minClearWidth
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
}

// Run executes fn while rendering "message... <glyph>" on w, overwriting
// the same line. The worker is signaled and joined, and the line erased,
// before Run returns — whether fn succeeds, fails, or panics. fn's error
// is returned unchanged.
func Run(w io.Writer, message string, fn func() error) error {
	s := &indicator{
		w:       w,
		message: message,
		done:    make(chan struct{}),
	}
	s.start()
	defer s.stop()
	return fn()
}
