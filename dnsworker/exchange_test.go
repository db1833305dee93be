// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnsworker

import (
	"context"
	"net/netip"
	"time"

	"github.com/siemens/digrank/test"
	"github.com/siemens/digrank/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("A record exchanges", func() {

	endpoint := func(addr netip.AddrPort, t types.Transport) types.NameServerEndpoint {
		return types.NameServerEndpoint{
			Addr:      addr,
			Transport: t,
			Timeout:   500 * time.Millisecond,
		}
	}

	It("resolves a name over UDP and TCP", NodeTimeout(10*time.Second), func(ctx context.Context) {
		ns := test.Nameserver(test.Answer("192.0.2.1", "192.0.2.2"), test.Answer("192.0.2.3"))
		Expect(Successful(ExchangeA(ctx, endpoint(ns, types.UDP), "example.org"))).To(Equal([]netip.Addr{
			netip.MustParseAddr("192.0.2.1"),
			netip.MustParseAddr("192.0.2.2"),
		}))
		Expect(Successful(ExchangeA(ctx, endpoint(ns, types.TCP), "example.org."))).To(ConsistOf(
			netip.MustParseAddr("192.0.2.3")))
	})

	It("reports empty answers", NodeTimeout(10*time.Second), func(ctx context.Context) {
		ns := test.Nameserver(test.Answer(), nil)
		addrs, err := ExchangeA(ctx, endpoint(ns, types.UDP), "example.org")
		Expect(err).To(MatchError(ErrNoAnswer))
		Expect(addrs).To(BeEmpty())
	})

	It("reports truncated answers", NodeTimeout(10*time.Second), func(ctx context.Context) {
		ns := test.Nameserver(test.Truncated("192.0.2.1"), nil)
		addrs, err := ExchangeA(ctx, endpoint(ns, types.UDP), "example.org")
		Expect(err).To(MatchError(ErrTruncated))
		Expect(addrs).To(BeEmpty())
	})

	It("reports unsuccessful rcodes", NodeTimeout(10*time.Second), func(ctx context.Context) {
		ns := test.Nameserver(test.Refuse(), nil)
		_, err := ExchangeA(ctx, endpoint(ns, types.UDP), "example.org")
		Expect(err).To(MatchError(ContainSubstring("REFUSED")))
	})

	It("times out on unresponsive nameservers", NodeTimeout(10*time.Second), func(ctx context.Context) {
		ns := test.Nameserver(test.Blackhole(), nil)
		start := time.Now()
		_, err := ExchangeA(ctx, endpoint(ns, types.UDP), "example.org")
		Expect(err).To(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 2*time.Second))
	})

	It("fails on missing TCP listeners", NodeTimeout(10*time.Second), func(ctx context.Context) {
		ns := test.Nameserver(test.Answer("192.0.2.1"), nil)
		_, err := ExchangeA(ctx, endpoint(ns, types.TCP), "example.org")
		Expect(err).To(HaveOccurred())
	})

})
