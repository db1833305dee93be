/*
Package query runs the complete pipeline of digging up the IPv4 addresses of a
domain, probing these addresses, and finally ranking them by their packet loss
and latencies.

[Start] kicks off a pipeline run in the background and immediately returns a
channel of human-readable progress lines. The channel gets closed when the run
has finished, regardless of whether it succeeded or not.

	         +--------+     +-----+     +------+     +------+
	domain ->| verify +---->| dig +---->| ping +---->| rank +--> ranked lines
	         +--------+     +-----+     +------+     +------+

Pipeline runs are configured using an explicit [Config] object instead of
global state; [DefaultConfig] picks up the host's ping utility family and
locale.
*/
package query
