// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnsworker

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/siemens/digrank/types"

	"github.com/miekg/dns"
)

// ErrNoAnswer is returned by [ExchangeA] when the nameserver answered, but
// without any IPv4 address.
var ErrNoAnswer = errors.New("no A records in answer")

// ErrTruncated is returned by [ExchangeA] when the nameserver's answer didn't
// fit and got truncated; the query should then be repeated over TCP.
var ErrTruncated = errors.New("truncated answer")

// Attempts is the number of times a query is sent to the same endpoint before
// giving up on that endpoint.
const Attempts = 1

// ExchangeA queries the specified nameserver endpoint for the IPv4 addresses
// of name, using the endpoint's transport and timeout. It returns the A record
// addresses in the order of the answer section; CNAMEs in the answer are
// passed over. No DNSSEC validation takes place.
func ExchangeA(ctx context.Context, ep types.NameServerEndpoint, name string) ([]netip.Addr, error) {
	dnsclnt := dns.Client{
		Net:     ep.Transport.Network(),
		Timeout: ep.Timeout,
	}
	msg := dns.Msg{
		MsgHdr: dns.MsgHdr{Id: dns.Id()},
	}
	msg.SetQuestion(dns.Fqdn(name), dns.TypeA)
	msg.RecursionDesired = true

	var err error
	for attempt := 0; attempt < Attempts; attempt++ {
		var r *dns.Msg
		qctx, cancel := context.WithTimeout(ctx, ep.Timeout)
		r, _, err = dnsclnt.ExchangeContext(qctx, &msg, ep.Addr.String())
		cancel()
		if err != nil {
			continue
		}
		if r.Rcode != dns.RcodeSuccess {
			return nil, fmt.Errorf("query for %q answered with %s",
				name, dns.RcodeToString[r.Rcode])
		}
		if r.Truncated {
			return nil, fmt.Errorf("query for %q: %w", name, ErrTruncated)
		}
		var addrs []netip.Addr
		for _, rr := range r.Answer {
			if addrRR, ok := rr.(*dns.A); ok {
				addr, ok := netip.AddrFromSlice(addrRR.A)
				if !ok {
					continue
				}
				addrs = append(addrs, addr.Unmap())
			}
		}
		if len(addrs) == 0 {
			return nil, fmt.Errorf("query for %q: %w", name, ErrNoAnswer)
		}
		return addrs, nil
	}
	return nil, err
}
