// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Yet another (braille) spinner.

package main

import (
	"time"
)

var spinnerPhases = func() []string {
	phases := []string{}
	for _, r := range "⠉⠘⠰⠤⠆⠃" {
		phases = append(phases, string(r)+" ")
	}
	return phases
}()

// spinner is yet another blindingly simple spinner; its phase is derived from
// the time elapsed since it was created, so it doesn't need any background
// ticker.
type spinner struct {
	start    time.Time
	interval time.Duration
	now      func() time.Time
}

// newSpinner returns a new spinner advancing one phase per specified interval.
func newSpinner(interval time.Duration) *spinner {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &spinner{
		start:    time.Now(),
		interval: interval,
		now:      time.Now,
	}
}

// Spinner returns the spinner string for the current phase.
func (s *spinner) Spinner() string {
	phase := int(s.now().Sub(s.start)/s.interval) % len(spinnerPhases)
	return spinnerPhases[phase]
}
