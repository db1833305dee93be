// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"net/netip"
	"sync"
	"time"

	"github.com/siemens/digrank/netns"
	"github.com/siemens/digrank/types"

	"github.com/gammazero/workerpool"
	"github.com/thediveo/lxkns/log"
)

// Runner runs a single probe of an IP address, returning the probe's text
// output.
type Runner interface {
	Run(ctx context.Context, ip netip.Addr) (string, error)
}

// RunnerFunc adapts an ordinary function to the [Runner] interface.
type RunnerFunc func(ctx context.Context, ip netip.Addr) (string, error)

// Run calls f(ctx, ip).
func (f RunnerFunc) Run(ctx context.Context, ip netip.Addr) (string, error) {
	return f(ctx, ip)
}

// Pinger probes IP addresses and then streams the raw probe results to a
// result/output channel. Pingers use a goroutine-limited worker pool.
type Pinger struct {
	count        int            // number of echo requests to send.
	timeout      time.Duration  // per echo request.
	platform     types.Platform // ping utility family.
	executable   string         // ping utility, if not the default one.
	native       bool           // if true, probes using go-ping instead of the ping utility.
	unprivileged bool           // if true, native probes use UDP instead of privileged ICMP.
	runner       Runner

	netns    string                    // path of the network namespace to ping from, if any.
	workers  *workerpool.WorkerPool    // workers running probes concurrently.
	results  chan types.RawProbeResult // results stream channel.
	stopOnce sync.Once
}

// PingerOption can be passed to New when creating new Pinger objects.
type PingerOption func(*Pinger)

// Default probe settings.
const (
	DefaultCount   = 4
	DefaultTimeout = 3 * time.Second
)

// New returns a new [Pinger] with a maximum worker pool of the specified size
// as well as a result stream. The result channel gets closed by
// [Pinger.StopWait].
//
// The new pinger defaults to sending 4 echo requests, waiting 3s for each
// reply, using the ping utility of the [types.Linux] family.
//
// The pinger can be configured during creation using several options:
//   - [WithCount]
//   - [WithTimeout]
//   - [ForPlatform]
//   - [WithExecutable]
//   - [AsNative] and [AsUnprivileged]
//   - [WithRunner]
//   - [InNetworkNamespace]
func New(size int, options ...PingerOption) (*Pinger, <-chan types.RawProbeResult) {
	if size < 1 {
		size = 1
	}
	results := make(chan types.RawProbeResult, size)
	pinger := &Pinger{
		count:    DefaultCount,
		timeout:  DefaultTimeout,
		platform: types.Linux,
		workers:  workerpool.New(size),
		results:  results,
	}
	for _, opt := range options {
		opt(pinger)
	}
	if pinger.runner == nil {
		if pinger.native {
			pinger.runner = &Native{
				Count:      pinger.count,
				Timeout:    pinger.timeout,
				Privileged: !pinger.unprivileged,
			}
		} else {
			pinger.runner = &Command{
				Executable: pinger.executable,
				Platform:   pinger.platform,
				Count:      pinger.count,
				Timeout:    pinger.timeout,
			}
		}
	}
	return pinger, results
}

// WithCount sets the number of echo requests per probe.
func WithCount(count uint) PingerOption {
	return func(p *Pinger) {
		if count > 0 {
			p.count = int(count)
		}
	}
}

// WithTimeout sets how long to wait for each echo reply.
func WithTimeout(timeout time.Duration) PingerOption {
	return func(p *Pinger) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// ForPlatform sets the ping utility family, determining the command line
// syntax and output text encoding.
func ForPlatform(platform types.Platform) PingerOption {
	return func(p *Pinger) {
		p.platform = platform
	}
}

// WithExecutable sets the ping utility to run instead of "ping" from the PATH.
func WithExecutable(path string) PingerOption {
	return func(p *Pinger) {
		p.executable = path
	}
}

// AsNative tells the Pinger to probe in-process using go-ping instead of
// running the ping utility.
func AsNative() PingerOption {
	return func(p *Pinger) {
		p.native = true
	}
}

// AsUnprivileged tells a native Pinger to carry out unprivileged pings using
// UDP instead of ICMP packets.
func AsUnprivileged() PingerOption {
	return func(p *Pinger) {
		p.unprivileged = true
	}
}

// WithRunner sets a custom probe runner, overriding all other runner-related
// options.
func WithRunner(r Runner) PingerOption {
	return func(p *Pinger) {
		p.runner = r
	}
}

// InNetworkNamespace optionally runs a [Pinger] inside the network namespace
// referenced by the specified filesystem path. An empty path leaves probing in
// the current network namespace. Network namespaces are supported on Linux
// only; elsewhere, all probes of such a Pinger fail.
func InNetworkNamespace(netnsref string) PingerOption {
	return func(p *Pinger) {
		p.netns = netnsref
	}
}

// OutputFormat returns the ping utility family whose output format the probe
// results are in.
func (p *Pinger) OutputFormat() types.Platform {
	if _, ok := p.runner.(*Native); ok {
		return types.Linux
	}
	return p.platform
}

// Probe the specified IP address. The result is sent to the channel returned
// together with the newly created [Pinger].
//
// If the specified context gets cancelled, a running probe is stopped and
// pending probe results won't be echoed to the result stream at all. However,
// spurious results might still appear on the result stream due to
// uncontrollable order of result sending and context cancellation detection.
func (p *Pinger) Probe(ctx context.Context, ip netip.Addr) {
	p.workers.Submit(func() {
		result := types.RawProbeResult{IP: ip}
		result.Output, result.Err = p.run(ctx, ip)
		if result.Err != nil {
			log.Debugf("probing %s failed: %s", ip, result.Err.Error())
		}
		// Allow cancelling a blocked result send to avoid leaking goroutines.
		select {
		case p.results <- result:
		case <-ctx.Done():
		}
	})
}

// run a single probe, switching into the network namespace if necessary.
func (p *Pinger) run(ctx context.Context, ip netip.Addr) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if p.netns == "" {
		return p.runner.Run(ctx, ip)
	}
	var output string
	var err error
	if nserr := netns.Execute(p.netns, func() {
		output, err = p.runner.Run(ctx, ip)
	}); nserr != nil {
		return "", nserr
	}
	return output, err
}

// StopWait waits for all queued probes to complete and then finally closes the
// result channel.
func (p *Pinger) StopWait() {
	p.stopOnce.Do(func() {
		p.workers.StopWait()
		close(p.results)
	})
}
