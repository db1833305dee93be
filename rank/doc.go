/*
Package rank orders the parsed probe results of IP addresses from best to
worst and reports them as progress lines.

Results are ordered by packet loss first, then by average, maximum, and
finally minimum latency, see also [types.PingMetrics.Less].
*/
package rank
