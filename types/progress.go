// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

// Progress receives the human-readable progress lines of a pipeline run. It
// must be safe for concurrent use, as all concurrent DNS queries and probes
// report directly to it.
type Progress interface {
	// Line emits a single line; an empty line is a section separator.
	Line(line string)
	// Linef emits a single formatted line.
	Linef(format string, args ...interface{})
	// Text emits a (multi-line) text block line by line, without other lines
	// getting interleaved.
	Text(text string)
}

// Discard is a Progress swallowing all lines.
var Discard Progress = discard{}

type discard struct{}

func (discard) Line(string)                  {}
func (discard) Linef(string, ...interface{}) {}
func (discard) Text(string)                  {}
