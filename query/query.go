// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"net/netip"

	"github.com/siemens/digrank/dig"
	"github.com/siemens/digrank/dnsworker"
	"github.com/siemens/digrank/ping"
	"github.com/siemens/digrank/progress"
	"github.com/siemens/digrank/rank"
	"github.com/siemens/digrank/types"

	"github.com/thediveo/lxkns/log"
)

// StartDNSQuery starts a pipeline run for the specified domain using the
// default configuration, returning the channel of progress lines. The run
// cannot be cancelled; use [Start] instead when cancellation is needed.
func StartDNSQuery(domain string) <-chan string {
	return Start(context.Background(), domain, DefaultConfig())
}

// Start starts a pipeline run for the specified domain in the background and
// returns the channel of progress lines. The channel gets closed after the run
// has finished. Cancelling the context stops the run, killing running probes,
// and closes the channel without delivering any lines still in flight.
func Start(ctx context.Context, domain string, cfg Config) <-chan string {
	stream, lines := progress.New(ctx)
	go func() {
		defer stream.Close()
		if _, err := Run(ctx, domain, cfg, stream); err != nil {
			stream.Linef("Error: %s", err.Error())
		}
	}()
	return lines
}

// Run a pipeline for the specified domain, emitting progress lines while
// working through the pipeline stages, and returning the ranked metrics. Run
// returns an error only when the domain is invalid, there are no usable
// nameservers, or the context is done; not finding any addresses is no error.
func Run(ctx context.Context, domain string, cfg Config, report types.Progress) ([]types.PingMetrics, error) {
	host, err := ValidateDomain(domain)
	if err != nil {
		return nil, err
	}
	nameservers := dig.Endpoints(cfg.Nameservers, cfg.Timeout)
	if len(nameservers) == 0 {
		return nil, ErrNoNameservers
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = len(nameservers)
	}
	log.Debugf("digging %q using %d nameservers and %d workers", host, len(nameservers), workers)
	digger := dig.New(workers,
		dnsworker.InNetworkNamespace(cfg.Netns),
		dnsworker.WithRate(cfg.QueriesPerSecond))
	addrs := digger.Dig(ctx, host, nameservers, report)
	digger.StopWait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report.Line("")
	report.Line("Query domain successful")
	if addrs.Len() == 0 {
		report.Line("")
		report.Line("no ip addresses found")
		return nil, nil
	}

	report.Line("")
	report.Line("Check results")
	metrics := probe(ctx, addrs.Addrs(), cfg, report)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ranked := rank.Rank(metrics)
	rank.Report(report, ranked)
	return ranked, nil
}

// probe all specified IP addresses concurrently, emitting the raw probe
// outputs, and returning the parsed metrics of the successful probes.
func probe(ctx context.Context, ips []netip.Addr, cfg Config, report types.Progress) []types.PingMetrics {
	pinger, results := ping.New(len(ips), cfg.pingerOptions()...)
	for _, ip := range ips {
		pinger.Probe(ctx, ip)
	}
	go pinger.StopWait()
	parser := ping.ParserFor(pinger.OutputFormat(), cfg.Locale)
	metrics := make([]types.PingMetrics, 0, len(ips))
	for result := range results {
		if result.Err != nil {
			report.Linef("Run ping command failed: %s", result.Err.Error())
			continue
		}
		report.Text(result.Output)
		metrics = append(metrics, parser.Parse(result.IP, result.Output))
	}
	return metrics
}
