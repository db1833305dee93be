// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/siemens/digrank/rank"

	"github.com/gosuri/uilive"
)

// styledLine returns the progress line styled according to what it reports.
func styledLine(line string) string {
	switch {
	case strings.HasPrefix(line, "IP: "):
		return rankedAddressStyle.Styled(line)
	case strings.HasPrefix(line, "Found IP for domain"):
		return foundAddressStyle.Styled(line)
	case strings.HasPrefix(line, "Error: "),
		strings.HasPrefix(line, "Run ping command failed"),
		line == "no ip addresses found":
		return failureStyle.Styled(line)
	case line == "Query domain successful",
		line == "Check results",
		line == rank.ResultsHeader:
		return sectionStyle.Styled(line)
	}
	return line
}

// status tracks the pipeline stage from the progress lines seen so far, in
// order to render a one-line status summary.
type status struct {
	domain  string
	queries int
	found   int
	probing bool
	ranked  int
	done    bool
}

// Update the status from the specified progress line.
func (s *status) Update(line string) {
	switch {
	case strings.HasPrefix(line, "Query domain '"):
		s.queries++
	case strings.HasPrefix(line, "Found IP for domain"):
		s.found++
	case line == "Check results":
		s.probing = true
	case strings.HasPrefix(line, "IP: "):
		s.ranked++
	}
}

// String returns the status line text.
func (s *status) String() string {
	switch {
	case s.done && s.ranked > 0:
		return fmt.Sprintf("ranked %d addresses of %s", s.ranked, s.domain)
	case s.done:
		return fmt.Sprintf("finished %s", s.domain)
	case s.probing:
		return fmt.Sprintf("probing addresses of %s...", s.domain)
	}
	return fmt.Sprintf("digging %s: %d queries, %d answers...", s.domain, s.queries, s.found)
}

// renderer renders the progress lines permanently to the terminal, while
// keeping a live status line with a spinner below them.
type renderer struct {
	term    *uilive.Writer
	spinner *spinner
	status  status
}

// newRenderer returns a renderer writing to the specified io.Writer.
func newRenderer(w io.Writer, domain string, sp *spinner) *renderer {
	term := uilive.New()
	term.Out = w
	return &renderer{
		term:    term,
		spinner: sp,
		status:  status{domain: domain},
	}
}

// Line renders a progress line above the live status line.
func (r *renderer) Line(line string) {
	r.status.Update(line)
	fmt.Fprintln(r.term.Bypass(), styledLine(line))
}

// Render (and flush) the live status line.
func (r *renderer) Render() {
	fmt.Fprintln(r.term, statusStyle.Styled(r.spinner.Spinner()+r.status.String()))
	_ = r.term.Flush()
}

// Finish renders the final status line.
func (r *renderer) Finish() {
	r.status.done = true
	fmt.Fprintln(r.term, r.status.String())
	_ = r.term.Flush()
}
