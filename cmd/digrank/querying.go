// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/siemens/digrank/query"
)

// QueryAndReport runs the pipeline for the specified domain and renders its
// progress lines as they come in. In plain mode, the progress lines are
// written unstyled and without any live status line, such as for piping them
// into other tools.
func QueryAndReport(ctx context.Context, w io.Writer, domain string, cfg query.Config, plain bool) error {
	lines := query.Start(ctx, domain, cfg)
	if plain {
		for line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return ctx.Err()
	}

	// Dunno what uilive's background updating mode using Start() is good
	// for? It may trigger anytime with the rendering into the buffer not
	// yet complete, thus making the terminal output very flickery. So we
	// avoid Start() and instead trigger an explicit flush to the terminal
	// after having completed the rendering.
	renderer := newRenderer(w, domain, newSpinner(*spinnerInterval))
	renderer.Render()
	ticker := time.NewTicker(*spinnerInterval)
	defer ticker.Stop()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				renderer.Finish()
				return ctx.Err()
			}
			renderer.Line(line)
			renderer.Render()
		case <-ticker.C:
			renderer.Render()
		}
	}
}
