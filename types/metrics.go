// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"net/netip"
)

// RawProbeResult pairs a probed IP address with the text output captured from
// the ping utility, or with the error in case the probe could not be carried
// out at all.
type RawProbeResult struct {
	IP     netip.Addr
	Output string
	Err    error
}

// PingMetrics are the parsed results of probing a single IP address. Latencies
// are in milliseconds, Loss is a percentage between 0 and 100.
type PingMetrics struct {
	IP   netip.Addr `json:"ip"`
	Min  int        `json:"min"`
	Avg  int        `json:"avg"`
	Max  int        `json:"max"`
	Loss int        `json:"loss"`
}

// NewPingMetrics returns the worst-case metrics for the specified IP address:
// zero latencies, but 100% packet loss.
func NewPingMetrics(ip netip.Addr) PingMetrics {
	return PingMetrics{IP: ip, Loss: 100}
}

// Less reports whether m ranks before other, comparing loss, then average,
// maximum, and finally minimum latency.
func (m PingMetrics) Less(other PingMetrics) bool {
	switch {
	case m.Loss != other.Loss:
		return m.Loss < other.Loss
	case m.Avg != other.Avg:
		return m.Avg < other.Avg
	case m.Max != other.Max:
		return m.Max < other.Max
	}
	return m.Min < other.Min
}

// String returns the report line for these metrics.
func (m PingMetrics) String() string {
	return fmt.Sprintf("IP: %s, Avg Latency: %dms, Min Latency: %dms, Max Latency: %dms, Packet Loss: %d%%",
		m.IP, m.Avg, m.Min, m.Max, m.Loss)
}
