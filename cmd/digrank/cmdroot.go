// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/siemens/digrank/config"
	"github.com/siemens/digrank/mobynet"
	"github.com/siemens/digrank/netns"
	"github.com/siemens/digrank/query"
	"github.com/siemens/digrank/types"

	"github.com/spf13/cobra"
	"github.com/thediveo/lxkns/log"
)

var (
	spinnerInterval *time.Duration
	workerNumber    *uint
	queryRate       *float64
	timeout         *time.Duration
	lang            *string
	nameservers     *[]string
	native          *bool
	unprivileged    *bool
	pingExecutable  *string
	netnsPath       *string
	containerName   *string
	configPath      *string
	plain           *bool
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "digrank [flags] domain",
		Short:   "digrank digs up the IPv4 addresses of a domain using many public nameservers and ranks them by ping quality",
		Version: "0.9",
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debugf("debug logging enabled")
			}
			if *workerNumber > config.MaxWorkers {
				return fmt.Errorf("--workers out of range [0..%d]", config.MaxWorkers)
			}
			if *queryRate < 0 {
				return fmt.Errorf("--qps must not be negative")
			}
			if *timeout < config.MinTimeout {
				return fmt.Errorf("--timeout must be at least %s", config.MinTimeout)
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			if *netnsPath != "" && *containerName != "" {
				return fmt.Errorf("--netns and --container are mutually exclusive")
			}
			if (*netnsPath != "" || *containerName != "") && !netns.Supported {
				return fmt.Errorf("--netns and --container: %w", netns.ErrUnsupported)
			}
			if *unprivileged && !*native {
				return fmt.Errorf("--unprivileged requires --native")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			cfg, err := newConfig(ctx, cmd)
			if err != nil {
				return err
			}
			return QueryAndReport(ctx, cmd.OutOrStdout(), args[0], cfg, *plain)
		},
	}
	// Sets up the flags.
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", 0, "number of concurrent DNS queries (0: all nameservers at once)")
	queryRate = rootCmd.PersistentFlags().Float64(
		"qps", 0, "maximum DNS queries started per second (0: unlimited)")
	timeout = rootCmd.PersistentFlags().Duration(
		"timeout", query.DefaultTimeout, "DNS query and echo reply timeout")
	lang = rootCmd.PersistentFlags().String(
		"lang", "", "ping output language, such as en-US or zh-CN (default: host locale)")
	nameservers = rootCmd.PersistentFlags().StringSlice(
		"nameserver", nil, "nameserver address to ask instead of the public ones, as ip or ip:port (repeatable)")
	native = rootCmd.PersistentFlags().Bool(
		"native", false, "probe in-process instead of running the ping utility")
	unprivileged = rootCmd.PersistentFlags().Bool(
		"unprivileged", false, "native probes use unprivileged UDP pings")
	pingExecutable = rootCmd.PersistentFlags().String(
		"ping", "", "ping utility to run (default: ping from PATH)")
	netnsPath = rootCmd.PersistentFlags().String(
		"netns", "", "network namespace to query and probe from, such as /proc/666/ns/net")
	containerName = rootCmd.PersistentFlags().String(
		"container", "", "Docker container whose network namespace to query and probe from")
	configPath = rootCmd.PersistentFlags().String(
		"config", "", "YAML configuration file")
	plain = rootCmd.PersistentFlags().Bool(
		"plain", false, "plain output without colors and live status")
	return
}

// newConfig returns the pipeline configuration: the host defaults, overridden
// by the configuration file, if any, in turn overridden by the command line
// flags explicitly set.
func newConfig(ctx context.Context, cmd *cobra.Command) (query.Config, error) {
	cfg := query.DefaultConfig()
	container := ""
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			return cfg, err
		}
		f.Apply(&cfg)
		if f.Container != nil {
			container = *f.Container
		}
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = int(*workerNumber)
	}
	if flags.Changed("qps") {
		cfg.QueriesPerSecond = *queryRate
	}
	if flags.Changed("timeout") {
		cfg.Timeout = *timeout
	}
	if flags.Changed("lang") {
		cfg.Locale = types.ParseLocale(*lang)
	}
	if flags.Changed("nameserver") {
		cfg.Nameservers = *nameservers
	}
	if flags.Changed("native") {
		cfg.Native = *native
	}
	if flags.Changed("unprivileged") {
		cfg.Unprivileged = *unprivileged
	}
	if flags.Changed("ping") {
		cfg.PingExecutable = *pingExecutable
	}
	if flags.Changed("netns") {
		cfg.Netns = *netnsPath
		container = ""
	}
	if flags.Changed("container") {
		container = *containerName
		cfg.Netns = ""
	}
	if (cfg.Netns != "" || container != "") && !netns.Supported {
		return cfg, fmt.Errorf("cannot query from network namespace: %w", netns.ErrUnsupported)
	}
	if container != "" {
		moby, err := mobynet.NewClient()
		if err != nil {
			return cfg, fmt.Errorf("cannot connect to the Docker daemon: %w", err)
		}
		defer moby.Close()
		cfg.Netns, err = mobynet.ContainerNetns(ctx, moby, container)
		if err != nil {
			return cfg, err
		}
	}
	log.Debugf("platform %s, locale %s, timeout %s, %d nameservers",
		cfg.Platform, cfg.Locale, cfg.Timeout, len(cfg.Nameservers))
	return cfg, nil
}
