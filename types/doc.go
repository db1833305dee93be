/*
Package types defines digrank's information model. It is small and revolves
around three things: the [NameServerEndpoint]s queried for a domain's IPv4
addresses, the [RawProbeResult] of pinging a resolved address, and the parsed
[PingMetrics] finally getting ranked.

# Immutability

digrank is concurrent wherever possible: all nameservers of the curated table
get queried at the same time and all resolved addresses get probed at the same
time. The values passed between these stages are thus plain values that get
copied, never shared. Where a value needs to change, such as an endpoint
falling back from UDP to TCP, a modified copy gets returned instead (see
[NameServerEndpoint.WithTransport]). This avoids locking and a whole class of
subtle bugs.

# Strategies

The host platform family ([Platform]) and the host locale ([Locale]) are
determined once at start and then passed around explicitly. Together they
select the ping command syntax, the ping output text encoding, and the regular
expressions for picking apart the ping output.
*/
package types
