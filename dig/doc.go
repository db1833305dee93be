/*
Package dig implements digging up the IPv4 addresses of a domain by asking a
whole bunch of public nameservers at the same time, and then merging their
answers into a single [AddressSet].

Each nameserver is first asked over UDP; only when this doesn't yield any
usable address, the same nameserver gets asked again, but this time over TCP.
A nameserver failing on both transports simply doesn't contribute any
addresses. The number of nameservers queried concurrently is limited by the
size of the underlying DNS worker pool.

	          +---+
	domain -->| D +--> AddressSet
	          +-+-+
	            |
	            +--> progress lines

Digging is implemented in pure Go, leveraging the incredible Go module
[miekg/dns].

[miekg/dns]: https://github.com/miekg/dns
*/
package dig
