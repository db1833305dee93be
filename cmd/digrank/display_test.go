// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("display", func() {

	DescribeTable("styles progress lines",
		func(line string, styled bool) {
			s := styledLine(line)
			Expect(s).To(ContainSubstring(line))
			if styled {
				Expect(s).NotTo(Equal(line))
			} else {
				Expect(s).To(Equal(line))
			}
		},
		Entry(nil, "IP: 192.0.2.1, Avg Latency: 1ms, Min Latency: 1ms, Max Latency: 1ms, Packet Loss: 0%", true),
		Entry(nil, "Found IP for domain 'example.com' : 192.0.2.1", true),
		Entry(nil, "Error: invalid domain name format", true),
		Entry(nil, "Run ping command failed: D'OH!", true),
		Entry(nil, "no ip addresses found", true),
		Entry(nil, "Check results", true),
		Entry(nil, "Display results（sorted）", true),
		Entry(nil, "Query domain 'example.com' using nameserver 1.1.1.1 (UDP)", false),
		Entry(nil, "64 bytes from 192.0.2.1: icmp_seq=1 ttl=57 time=11.6 ms", false),
		Entry(nil, "", false),
	)

	It("tracks the status", func() {
		s := status{domain: "example.com"}
		Expect(s.String()).To(Equal("digging example.com: 0 queries, 0 answers..."))
		for _, line := range []string{
			"Query domain 'example.com' using nameserver 1.1.1.1 (UDP)",
			"Query domain 'example.com' using nameserver 1.2.4.8 (UDP)",
			"Found IP for domain 'example.com' : 192.0.2.1",
		} {
			s.Update(line)
		}
		Expect(s.String()).To(Equal("digging example.com: 2 queries, 1 answers..."))
		s.Update("Check results")
		Expect(s.String()).To(Equal("probing addresses of example.com..."))
		s.done = true
		Expect(s.String()).To(Equal("finished example.com"))
		s.Update("IP: 192.0.2.1, Avg Latency: 1ms, Min Latency: 1ms, Max Latency: 1ms, Packet Loss: 0%")
		Expect(s.String()).To(Equal("ranked 1 addresses of example.com"))
	})

	It("spins", func() {
		now := time.Now()
		sp := newSpinner(100 * time.Millisecond)
		sp.start = now
		sp.now = func() time.Time { return now }
		Expect(sp.Spinner()).To(Equal("⠉ "))
		sp.now = func() time.Time { return now.Add(250 * time.Millisecond) }
		Expect(sp.Spinner()).To(Equal("⠰ "))
		sp.now = func() time.Time { return now.Add(650 * time.Millisecond) }
		Expect(sp.Spinner()).To(Equal("⠉ "))
	})

})
