// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/siemens/digrank/types"

	"github.com/gammazero/deque"
)

// Stream is an unbounded, multiple-producer, single-consumer stream of
// progress lines.
type Stream struct {
	mu     sync.Mutex
	lines  deque.Deque[string] // queued lines not yet picked up by the consumer.
	closed bool
	notify chan struct{} // signals newly queued lines or closing.
	out    chan string
}

var _ types.Progress = (*Stream)(nil)

// New returns a new progress line stream together with the channel to receive
// the lines from. The channel gets closed after [Stream.Close] has been called
// and all lines queued so far have been received, or when the specified
// context is done. In the latter case, still queued lines get dropped.
func New(ctx context.Context) (*Stream, <-chan string) {
	s := &Stream{
		notify: make(chan struct{}, 1),
		out:    make(chan string),
	}
	go s.pump(ctx)
	return s, s.out
}

// Line emits a single line.
func (s *Stream) Line(line string) {
	s.push(line)
}

// Linef emits a single formatted line.
func (s *Stream) Linef(format string, args ...interface{}) {
	s.push(fmt.Sprintf(format, args...))
}

// Text emits the specified text line by line. An empty text emits a single
// empty line.
func (s *Stream) Text(text string) {
	s.push(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")...)
}

// Close the stream: no more lines can be emitted and the receiving channel
// will be closed after the consumer has received all lines queued so far.
// Close is idempotent.
func (s *Stream) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wakeup()
}

// push queues the specified lines in one go, unless the stream has already
// been closed.
func (s *Stream) push(lines ...string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	for _, line := range lines {
		s.lines.PushBack(line)
	}
	s.mu.Unlock()
	s.wakeup()
}

// wakeup signals the pump without ever blocking.
func (s *Stream) wakeup() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// pump moves queued lines to the consumer until the stream is closed and
// drained, or the context is done.
func (s *Stream) pump(ctx context.Context) {
	defer close(s.out)
	for {
		s.mu.Lock()
		if s.lines.Len() == 0 {
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return
			}
			select {
			case <-s.notify:
				continue
			case <-ctx.Done():
				return
			}
		}
		line := s.lines.PopFront()
		s.mu.Unlock()
		select {
		case s.out <- line:
		case <-ctx.Done():
			return
		}
	}
}
