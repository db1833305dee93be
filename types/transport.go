// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Transport is the DNS transport protocol used when talking to a nameserver.
type Transport int

// The DNS transports, in the order in which they are tried.
const (
	UDP Transport = iota // plain DNS over UDP, tried first.
	TCP                  // plain DNS over TCP, fallback.
)

// String returns the clear-text representation of a Transport value, as used
// in progress lines.
func (t Transport) String() string {
	switch t {
	case UDP:
		return "UDP"
	case TCP:
		return "TCP"
	}
	return fmt.Sprintf("Transport(%d)", t)
}

// Network returns the network name of the transport as understood by the net
// and miekg/dns packages.
func (t Transport) Network() string {
	switch t {
	case TCP:
		return "tcp"
	default:
		return "udp"
	}
}
