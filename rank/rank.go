// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package rank

import (
	"sort"

	"github.com/siemens/digrank/types"
)

// ResultsHeader precedes the ranked result lines.
const ResultsHeader = "Display results（sorted）"

// Rank returns the metrics sorted from best to worst, leaving the passed
// metrics untouched. Equal metrics keep their relative order.
func Rank(metrics []types.PingMetrics) []types.PingMetrics {
	ranked := append([]types.PingMetrics{}, metrics...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Less(ranked[j])
	})
	return ranked
}

// Report emits the header, a separator line, and one line per ranked result.
// Report emits nothing at all when there are no results.
func Report(progress types.Progress, ranked []types.PingMetrics) {
	if len(ranked) == 0 {
		return
	}
	progress.Line(ResultsHeader)
	progress.Line("")
	for _, m := range ranked {
		progress.Line(m.String())
	}
}
