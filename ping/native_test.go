// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"net/netip"
	"os"
	"time"

	"github.com/siemens/digrank/types"

	"github.com/go-ping/ping"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("native pings", func() {

	ip := netip.MustParseAddr("192.0.2.1")

	It("renders statistics parseable as iputils output", func() {
		stats := &ping.Statistics{
			PacketsSent: 4,
			PacketsRecv: 3,
			PacketLoss:  25,
			MinRtt:      11612 * time.Microsecond,
			AvgRtt:      12533 * time.Microsecond,
			MaxRtt:      13901 * time.Microsecond,
			StdDevRtt:   987 * time.Microsecond,
		}
		summary := Summary(ip, stats)
		Expect(summary).To(Equal(`--- 192.0.2.1 ping statistics ---
4 packets transmitted, 3 received, 25% packet loss
rtt min/avg/max/mdev = 11.612/12.533/13.901/0.987 ms`))
		Expect(ParserFor(types.Linux, types.English).Parse(ip, summary)).To(Equal(types.PingMetrics{
			IP: ip, Min: 12, Avg: 13, Max: 14, Loss: 25,
		}))
	})

	It("leaves out round-trip times without replies", func() {
		summary := Summary(ip, &ping.Statistics{PacketsSent: 4, PacketLoss: 100})
		Expect(summary).NotTo(ContainSubstring("rtt"))
		Expect(ParserFor(types.Linux, types.English).Parse(ip, summary)).To(Equal(types.NewPingMetrics(ip)))
	})

	It("pings the loopback", NodeTimeout(30*time.Second), func(ctx context.Context) {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
		n := &Native{Count: 2, Timeout: time.Second, Privileged: true}
		output := Successful(n.Run(ctx, netip.MustParseAddr("127.0.0.1")))
		Expect(ParserFor(types.Linux, types.English).Parse(ip, output).Loss).To(BeZero())
	})

})
