// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"context"
	"net/netip"
	"sync"

	"github.com/siemens/digrank/dnsworker"
	"github.com/siemens/digrank/types"

	"github.com/thediveo/lxkns/log"
	"golang.org/x/net/idna"
)

// transports lists the DNS transports in the order they are tried with each
// nameserver.
var transports = []types.Transport{types.UDP, types.TCP}

// Digger digs the IPv4 addresses of domains by asking many nameservers
// concurrently, reporting its findings as progress lines.
type Digger struct {
	workers *dnsworker.Pool
}

// New returns a new Digger with a maximum DNS worker pool of the specified
// size. The pool options are passed on to the DNS worker pool, for instance,
// to dig from inside a different network namespace.
func New(size int, options ...dnsworker.PoolOption) *Digger {
	return &Digger{
		workers: dnsworker.New(size, options...),
	}
}

// Dig asks all specified nameservers for the IPv4 addresses of domain and
// returns the merged and deduplicated addresses after all nameservers have
// either answered, failed, or timed out. Dig emits a progress line for each
// query sent and for each address found. Nameserver failures are not errors:
// such nameservers just don't contribute any addresses.
//
// Internationalized domain names are queried in their ASCII form, while
// progress lines show domain as passed. An IP address literal isn't queried
// at all, but taken as is.
func (d *Digger) Dig(ctx context.Context, domain string, nameservers []types.NameServerEndpoint, progress types.Progress) *AddressSet {
	if addr, err := netip.ParseAddr(domain); err == nil {
		addrs := NewAddressSet()
		if addrs.Add(addr) {
			progress.Linef("Found IP for domain '%s' : %s", domain, addr.Unmap())
		}
		return addrs
	}
	qname, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		log.Debugf("cannot convert %q to ASCII, querying as is: %s", domain, err.Error())
		qname = domain
	}
	addrs := NewAddressSet()
	var wg sync.WaitGroup
	for _, ns := range nameservers {
		ns := ns
		wg.Add(1)
		d.workers.Submit(ctx, func(err error) {
			defer wg.Done()
			if err != nil {
				log.Debugf("skipping nameserver %s: %s", ns.Server(), err.Error())
				return
			}
			for _, addr := range d.digNameserver(ctx, domain, qname, ns, progress) {
				addrs.Add(addr)
			}
		})
	}
	wg.Wait()
	return addrs
}

// digNameserver asks a single nameserver, first via UDP and, if that doesn't
// yield any usable addresses, then via TCP.
func (d *Digger) digNameserver(
	ctx context.Context,
	domain string,
	qname string,
	ns types.NameServerEndpoint,
	progress types.Progress,
) []netip.Addr {
	for _, transport := range transports {
		if ctx.Err() != nil {
			return nil
		}
		ep := ns.WithTransport(transport)
		progress.Linef("Query domain '%s' using nameserver %s (%s)", domain, ep.Server(), transport)
		addrs, err := dnsworker.ExchangeA(ctx, ep, qname)
		if err != nil {
			log.Debugf("nameserver %s: %s", ep, err.Error())
			continue
		}
		addrs = usable(addrs)
		if len(addrs) == 0 {
			continue
		}
		for _, addr := range addrs {
			progress.Linef("Found IP for domain '%s' : %s", domain, addr)
		}
		return addrs
	}
	return nil
}

// usable returns only the IPv4 addresses that aren't unspecified.
func usable(addrs []netip.Addr) []netip.Addr {
	n := 0
	for _, addr := range addrs {
		if addr.Is4() && !addr.IsUnspecified() {
			addrs[n] = addr
			n++
		}
	}
	return addrs[:n]
}

// StopWait waits for all queued DNS tasks to get processed and then releases
// the DNS worker pool.
func (d *Digger) StopWait() {
	d.workers.StopWait()
}
