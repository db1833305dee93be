// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"math"
	"net/netip"
	"regexp"
	"strconv"

	"github.com/siemens/digrank/types"
)

// Parser picks apart the text output of a particular ping utility family in a
// particular locale.
type Parser struct {
	loss      *regexp.Regexp // packet loss percentage.
	lossGroup int
	rtt       *regexp.Regexp // min, max, and avg round-trip times, in whatever order.
	minGroup  int
	avgGroup  int
	maxGroup  int
}

// unixParser parses iputils, busybox, and BSD ping output, which isn't
// localized.
var unixParser = &Parser{
	loss:      regexp.MustCompile(`(\d+(?:\.\d+)?)% packet loss`),
	lossGroup: 1,
	rtt:       regexp.MustCompile(`(?:rtt|round-trip) min/avg/max(?:/(?:mdev|stddev))? = (\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)`),
	minGroup:  1,
	avgGroup:  2,
	maxGroup:  3,
}

// parsers maps the ping utility families and locales to their parsers.
var parsers = map[types.Platform]map[types.Locale]*Parser{
	types.Windows: {
		types.English: {
			loss:      regexp.MustCompile(`(\d+)% (?:packet )?loss`),
			lossGroup: 1,
			rtt:       regexp.MustCompile(`Minimum = (\d+)ms, Maximum = (\d+)ms, Average = (\d+)ms`),
			minGroup:  1,
			maxGroup:  2,
			avgGroup:  3,
		},
		types.Chinese: {
			loss:      regexp.MustCompile(`丢失 = (\d+) \((\d+)% 丢失\)`),
			lossGroup: 2,
			rtt:       regexp.MustCompile(`最短 = (\d+)ms，最长 = (\d+)ms，平均 = (\d+)ms`),
			minGroup:  1,
			maxGroup:  2,
			avgGroup:  3,
		},
	},
	types.Linux: {
		types.English: unixParser,
		types.Chinese: unixParser,
	},
	types.Darwin: {
		types.English: unixParser,
		types.Chinese: unixParser,
	},
}

// ParserFor returns the parser for the specified ping utility family and
// locale.
func ParserFor(platform types.Platform, locale types.Locale) *Parser {
	if p, ok := parsers[platform][locale]; ok {
		return p
	}
	if p, ok := parsers[platform][types.English]; ok {
		return p
	}
	return unixParser
}

// Parse the text output from probing the specified IP address into metrics.
// Parse never fails: if the packet loss cannot be found it defaults to 100%,
// if the round-trip times cannot be found they default to 0ms.
func (p *Parser) Parse(ip netip.Addr, output string) types.PingMetrics {
	metrics := types.NewPingMetrics(ip)
	if m := p.loss.FindStringSubmatch(output); m != nil {
		if loss, ok := number(m[p.lossGroup]); ok && loss <= 100 {
			metrics.Loss = loss
		}
	}
	if m := p.rtt.FindStringSubmatch(output); m != nil {
		metrics.Min, _ = number(m[p.minGroup])
		metrics.Avg, _ = number(m[p.avgGroup])
		metrics.Max, _ = number(m[p.maxGroup])
	}
	return metrics
}

// number parses a non-negative decimal number, rounding it to the nearest
// integer.
func number(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(math.Round(f)), true
}
