// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/go-ping/ping"
)

// Native probes in-process using go-ping, rendering the statistics as iputils
// ping would.
type Native struct {
	Count      int
	Timeout    time.Duration // wait time for the last echo reply.
	Privileged bool          // ICMP if true, otherwise UDP.
}

var _ Runner = (*Native)(nil)

// Run probes the specified IP address, stopping early when the context gets
// cancelled.
func (n *Native) Run(ctx context.Context, ip netip.Addr) (string, error) {
	pinger, err := ping.NewPinger(ip.String())
	if err != nil {
		return "", err
	}
	pinger.SetPrivileged(n.Privileged)
	pinger.Count = n.Count
	pinger.Interval = time.Second
	// Always limit waiting for the last ping to get reflected (or not)!
	pinger.Timeout = time.Duration(n.Count-1)*pinger.Interval + n.Timeout
	// While the ping is running, monitor the context in case it becomes done.
	// The done channel here works "the other way round" in that it terminates
	// the concurrent context monitoring.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()
	if err := pinger.Run(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Summary(ip, pinger.Statistics()), nil
}

// Summary renders go-ping statistics in the format of the iputils ping summary.
func Summary(ip netip.Addr, stats *ping.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ping statistics ---\n", ip)
	fmt.Fprintf(&b, "%d packets transmitted, %d received, %s%% packet loss",
		stats.PacketsSent, stats.PacketsRecv, strconv.FormatFloat(stats.PacketLoss, 'f', -1, 64))
	if stats.PacketsRecv > 0 {
		fmt.Fprintf(&b, "\nrtt min/avg/max/mdev = %s/%s/%s/%s ms",
			millis(stats.MinRtt), millis(stats.AvgRtt), millis(stats.MaxRtt), millis(stats.StdDevRtt))
	}
	return b.String()
}

// millis formats a duration as milliseconds with microsecond precision.
func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}
