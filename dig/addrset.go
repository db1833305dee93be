// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"net/netip"
	"sync"
)

// AddressSet is a concurrency-safe set of unique IPv4 addresses, remembering
// the order in which the addresses were added first. The unspecified address
// 0.0.0.0 as well as non-IPv4 addresses never make it into the set.
type AddressSet struct {
	mu    sync.Mutex
	seen  map[netip.Addr]struct{}
	addrs []netip.Addr
}

// NewAddressSet returns a new and properly initialized AddressSet.
func NewAddressSet() *AddressSet {
	return &AddressSet{
		seen: map[netip.Addr]struct{}{},
	}
}

// Add the specified address to the set, unless it is already present or not a
// usable IPv4 address. Add returns true if the address was newly added.
func (s *AddressSet) Add(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.Is4() || addr.IsUnspecified() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[addr]; ok {
		return false
	}
	s.seen[addr] = struct{}{}
	s.addrs = append(s.addrs, addr)
	return true
}

// Addrs returns (a copy of) the addresses in the set, in the order they were
// first added.
func (s *AddressSet) Addrs() []netip.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	addrs := make([]netip.Addr, len(s.addrs))
	copy(addrs, s.addrs)
	return addrs
}

// Len returns the number of addresses in the set.
func (s *AddressSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.addrs)
}
