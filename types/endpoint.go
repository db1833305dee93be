// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"net/netip"
	"time"
)

// DNSPort is the well-known DNS port.
const DNSPort = 53

// NameServerEndpoint is a nameserver IPv4 address (and port), together with the
// transport to use and the per-query timeout.
type NameServerEndpoint struct {
	Addr      netip.AddrPort // nameserver address and port.
	Transport Transport      // UDP or TCP.
	Timeout   time.Duration  // per-query timeout.
}

// NewNameServerEndpoint returns a UDP endpoint for the specified nameserver
// address on the standard DNS port.
func NewNameServerEndpoint(addr netip.Addr, timeout time.Duration) NameServerEndpoint {
	return NameServerEndpoint{
		Addr:      netip.AddrPortFrom(addr, DNSPort),
		Timeout:   timeout,
		Transport: UDP,
	}
}

// WithTransport returns a copy of this endpoint using the specified transport.
func (ep NameServerEndpoint) WithTransport(t Transport) NameServerEndpoint {
	ep.Transport = t
	return ep
}

// Server returns the nameserver address only, without the port.
func (ep NameServerEndpoint) Server() netip.Addr { return ep.Addr.Addr() }

// String returns the endpoint in "ip:port/transport" notation.
func (ep NameServerEndpoint) String() string {
	return ep.Addr.String() + "/" + ep.Transport.Network()
}
