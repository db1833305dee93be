/*
Package ping implements probing IP addresses for their round-trip latency and
packet loss, as well as parsing the text output of ping utilities into
[types.PingMetrics].

[Pinger] objects support concurrent probing with maximum goroutine limits.
Individual probe results are streamed as they complete, to a channel returned
when creating a new Pinger object.

	         +---+
	addr --->| P +-->ch RawProbeResult
	         +---+

By default, a Pinger runs the host's ping utility, with the command line syntax
and output text encoding depending on the host [types.Platform]. Alternatively,
a Pinger can probe natively using [go-ping/ping] (see [AsNative]), rendering
its statistics in the output format of the iputils ping utility.

The text output gets picked apart by a [Parser] matching the ping utility's
output format and the host [types.Locale]. Text that cannot be parsed results
in worst-case metrics instead of an error.

# Acknowledgements

Under its hood, [Pinger] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
[go-ping/ping]: https://github.com/go-ping/ping
*/
package ping
