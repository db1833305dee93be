// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package test

import (
	"fmt"
	"strings"
	"sync"
)

// Recorder records progress lines for later inspection; it is safe for
// concurrent use.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// Line records a single line.
func (r *Recorder) Line(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Linef records a single formatted line.
func (r *Recorder) Linef(format string, args ...interface{}) {
	r.Line(fmt.Sprintf(format, args...))
}

// Text records a text block line by line.
func (r *Recorder) Text(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, strings.Split(text, "\n")...)
}

// Lines returns (a copy of) the lines recorded so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.lines...)
}
