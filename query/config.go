// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package query

import (
	"time"

	"github.com/siemens/digrank/dig"
	"github.com/siemens/digrank/hostenv"
	"github.com/siemens/digrank/ping"
	"github.com/siemens/digrank/types"
)

// DefaultTimeout is the default per-query and per-echo-reply timeout.
const DefaultTimeout = 3 * time.Second

// Config configures a pipeline run.
type Config struct {
	Platform         types.Platform // ping utility family.
	Locale           types.Locale   // ping utility output language.
	Timeout          time.Duration  // per DNS query and per echo reply.
	Nameservers      []string       // "ip" or "ip:port".
	Workers          int            // concurrent DNS queries; all nameservers at once if zero.
	QueriesPerSecond float64        // DNS query pacing; unlimited if zero.
	Netns            string         // path of the network namespace to work in, if any.
	Native           bool           // probe in-process instead of running the ping utility.
	Unprivileged     bool           // native probes use UDP instead of ICMP.
	PingExecutable   string         // ping utility to run instead of "ping".
	Prober           ping.Runner    // overrides all other probing settings, if set.
}

// DefaultConfig returns the configuration for the host this process runs on,
// asking the public nameservers.
func DefaultConfig() Config {
	return Config{
		Platform:    hostenv.Platform(),
		Locale:      hostenv.Locale(),
		Timeout:     DefaultTimeout,
		Nameservers: append([]string{}, dig.PublicNameservers...),
	}
}

// pingerOptions returns the Pinger options for this configuration.
func (c Config) pingerOptions() []ping.PingerOption {
	options := []ping.PingerOption{
		ping.ForPlatform(c.Platform),
		ping.WithTimeout(c.Timeout),
		ping.WithExecutable(c.PingExecutable),
		ping.InNetworkNamespace(c.Netns),
	}
	if c.Native {
		options = append(options, ping.AsNative())
		if c.Unprivileged {
			options = append(options, ping.AsUnprivileged())
		}
	}
	if c.Prober != nil {
		options = append(options, ping.WithRunner(c.Prober))
	}
	return options
}
