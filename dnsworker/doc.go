/*
Package dnsworker implements a simple limiting DNS task execution pool,
together with the IPv4 address (A record) exchange with a single nameserver
endpoint. digrank uses a [Pool] for querying many nameservers concurrently.

Usage

	pool := dnsworker.New(8) // number of parallel DNS workers
	pool.Submit(func() {
	    addrs, err := dnsworker.ExchangeA(ctx, endpoint, "example.org")
	    // do something with addrs, unless there's an error reported
	})
	pool.StopWait()

To send the DNS queries from inside a network namespace other than the one of
the process, pass the [InNetworkNamespace] option to [New].

# Acknowledgements

Under its hood, [Pool] leverages [gammazero/workerpool] as the limiting
goroutine pool, and [miekg/dns] for talking DNS.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
[miekg/dns]: https://github.com/miekg/dns
*/
package dnsworker
