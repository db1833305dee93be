// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"net/netip"
	"time"

	"github.com/siemens/digrank/types"
)

// PublicNameservers is the curated list of public recursive nameservers that
// get asked.
var PublicNameservers = []string{
	"1.1.1.1",
	"1.2.4.8",
	"1.12.12.12",
	"4.2.2.1",
	"8.8.8.8",
	"8.20.247.20",
	"8.26.56.26",
	"9.9.9.9",
	"45.11.45.11",
	"52.80.52.52",
	"64.6.64.6",
	"74.82.42.42",
	"77.88.8.8",
	"80.80.80.80",
	"84.200.69.80",
	"94.140.14.14",
	"100.95.0.1",
	"101.101.101.101",
	"101.226.4.6",
	"114.114.114.114",
	"117.50.10.10",
	"119.29.29.29",
	"156.154.70.1",
	"168.95.1.1",
	"168.126.63.1",
	"180.76.76.76",
	"180.184.1.1",
	"182.254.118.118",
	"185.222.222.222",
	"195.46.39.39",
	"199.85.126.10",
	"202.120.2.100",
	"208.67.222.222",
	"210.2.4.8",
	"223.5.5.5",
}

// Endpoints returns the UDP endpoints for the specified nameserver addresses,
// using the specified per-query timeout. Nameservers are given either as plain
// IPv4 addresses, using the standard DNS port, or in "ip:port" notation.
// Nameserver addresses that aren't valid IPv4 addresses are skipped.
func Endpoints(nameservers []string, timeout time.Duration) []types.NameServerEndpoint {
	eps := make([]types.NameServerEndpoint, 0, len(nameservers))
	for _, ns := range nameservers {
		addrport, err := netip.ParseAddrPort(ns)
		if err != nil {
			addr, err := netip.ParseAddr(ns)
			if err != nil {
				continue
			}
			addrport = netip.AddrPortFrom(addr, types.DNSPort)
		}
		if !addrport.Addr().Is4() {
			continue
		}
		ep := types.NewNameServerEndpoint(addrport.Addr(), timeout)
		ep.Addr = addrport
		eps = append(eps, ep)
	}
	return eps
}
