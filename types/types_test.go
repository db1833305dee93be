// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"net/netip"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("information model", func() {

	It("switches to TCP without touching the receiver endpoint", func() {
		ep := NewNameServerEndpoint(netip.MustParseAddr("8.8.8.8"), 3*time.Second)
		Expect(ep.Transport).To(Equal(UDP))
		tcp := ep.WithTransport(TCP)
		Expect(tcp.Transport).To(Equal(TCP))
		Expect(tcp.Addr).To(Equal(ep.Addr))
		Expect(ep.Transport).To(Equal(UDP))
		Expect(tcp.String()).To(Equal("8.8.8.8:53/tcp"))
		Expect(tcp.Server().String()).To(Equal("8.8.8.8"))
	})

	It("stringifies enumerations", func() {
		Expect(UDP.String()).To(Equal("UDP"))
		Expect(TCP.Network()).To(Equal("tcp"))
		Expect(Transport(42).String()).To(Equal("Transport(42)"))
		Expect(Chinese.String()).To(Equal("zh-CN"))
		Expect(Windows.String()).To(Equal("windows"))
	})

	DescribeTable("parses locale names",
		func(name string, expected Locale) {
			Expect(ParseLocale(name)).To(Equal(expected))
		},
		Entry(nil, "zh-CN", Chinese),
		Entry(nil, "zh-Hans-CN", Chinese),
		Entry(nil, "zh_CN.UTF-8", Chinese),
		Entry(nil, "zh-TW", English),
		Entry(nil, "en_US.UTF-8", English),
		Entry(nil, "", English),
		Entry(nil, "C", English),
	)

	DescribeTable("maps GOOS to ping families",
		func(goos string, expected Platform) {
			Expect(PlatformOf(goos)).To(Equal(expected))
		},
		Entry(nil, "linux", Linux),
		Entry(nil, "android", Linux),
		Entry(nil, "darwin", Darwin),
		Entry(nil, "freebsd", Darwin),
		Entry(nil, "windows", Windows),
	)

	When("ranking metrics", func() {

		ip := netip.MustParseAddr("192.0.2.1")

		It("defaults to worst-case metrics", func() {
			Expect(NewPingMetrics(ip)).To(Equal(PingMetrics{IP: ip, Loss: 100}))
		})

		It("ranks by loss regardless of latencies", func() {
			a := PingMetrics{Loss: 0, Avg: 900, Max: 900, Min: 900}
			b := PingMetrics{Loss: 25, Avg: 1, Max: 1, Min: 1}
			Expect(a.Less(b)).To(BeTrue())
			Expect(b.Less(a)).To(BeFalse())
		})

		It("cascades ties to avg, max, then min", func() {
			Expect(PingMetrics{Avg: 10}.Less(PingMetrics{Avg: 11})).To(BeTrue())
			Expect(PingMetrics{Avg: 10, Max: 20}.Less(PingMetrics{Avg: 10, Max: 21})).To(BeTrue())
			Expect(PingMetrics{Avg: 10, Max: 20, Min: 5}.Less(PingMetrics{Avg: 10, Max: 20, Min: 6})).To(BeTrue())
			Expect(PingMetrics{Avg: 10}.Less(PingMetrics{Avg: 10})).To(BeFalse())
		})

		It("renders the report line", func() {
			m := PingMetrics{IP: ip, Min: 1, Avg: 2, Max: 3, Loss: 0}
			Expect(m.String()).To(Equal(
				"IP: 192.0.2.1, Avg Latency: 2ms, Min Latency: 1ms, Max Latency: 3ms, Packet Loss: 0%"))
		})

	})

})
