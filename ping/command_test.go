// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"net/netip"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/siemens/digrank/types"

	"golang.org/x/text/encoding/simplifiedchinese"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// fakePing writes a throw-away shell script standing in for the ping utility
// and returns its path.
func fakePing(script string) string {
	GinkgoHelper()
	if runtime.GOOS == "windows" {
		Skip("needs a POSIX shell")
	}
	dir := Successful(os.MkdirTemp("", "digrank-ping-*"))
	DeferCleanup(func() { _ = os.RemoveAll(dir) })
	path := filepath.Join(dir, "ping")
	Expect(os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)).To(Succeed())
	return path
}

var _ = Describe("ping utility", func() {

	ip := netip.MustParseAddr("192.0.2.1")

	DescribeTable("builds the command line",
		func(platform types.Platform, timeout time.Duration, expected []string) {
			c := &Command{Platform: platform, Count: 4, Timeout: timeout}
			Expect(c.Args(ip)).To(Equal(expected))
		},
		Entry("iputils", types.Linux, 3*time.Second, []string{"-c", "4", "-W", "3", "192.0.2.1"}),
		Entry("iputils with sub-second timeout", types.Linux, 10*time.Millisecond, []string{"-c", "4", "-W", "1", "192.0.2.1"}),
		Entry("BSD", types.Darwin, 3*time.Second, []string{"-c", "4", "-W", "3000", "192.0.2.1"}),
		Entry("Windows", types.Windows, 3*time.Second, []string{"/n", "4", "/w", "3000", "192.0.2.1"}),
		Entry("Windows with tiny timeout", types.Windows, time.Millisecond, []string{"/n", "4", "/w", "100", "192.0.2.1"}),
	)

	It("decodes GBK output on Windows", func() {
		gbk := Successful(simplifiedchinese.GBK.NewEncoder().String("丢失 = 0 (0% 丢失)"))
		Expect(Decode(types.Windows, []byte(gbk))).To(Equal("丢失 = 0 (0% 丢失)"))
		Expect(Decode(types.Windows, []byte("Lost = 0 (0% loss)"))).To(Equal("Lost = 0 (0% loss)"))
	})

	It("trims and sanitizes output elsewhere", func() {
		Expect(Decode(types.Linux, []byte("  foo\xffbar\n\n"))).To(Equal("foo�bar"))
	})

	It("returns the output of a successful ping", NodeTimeout(10*time.Second), func(ctx context.Context) {
		c := &Command{
			Executable: fakePing(`echo "args: $*"; echo "4 packets transmitted, 4 received, 0% packet loss"`),
			Count:      4,
			Timeout:    time.Second,
		}
		Expect(Successful(c.Run(ctx, ip))).To(Equal(
			"args: -c 4 -W 1 192.0.2.1\n4 packets transmitted, 4 received, 0% packet loss"))
	})

	It("returns the output of a lossy ping", NodeTimeout(10*time.Second), func(ctx context.Context) {
		c := &Command{
			Executable: fakePing(`echo "4 packets transmitted, 0 received, 100% packet loss"; exit 1`),
			Count:      4,
			Timeout:    time.Second,
		}
		Expect(Successful(c.Run(ctx, ip))).To(ContainSubstring("100% packet loss"))
	})

	It("reports a ping without output", NodeTimeout(10*time.Second), func(ctx context.Context) {
		c := &Command{Executable: fakePing(`echo "ping: bad address" >&2; exit 2`), Count: 4, Timeout: time.Second}
		_, err := c.Run(ctx, ip)
		Expect(err).To(MatchError(ErrNoOutput))
	})

	It("reports a ping failing to launch", NodeTimeout(10*time.Second), func(ctx context.Context) {
		c := &Command{Executable: "/nonexisting/ping", Count: 4, Timeout: time.Second}
		_, err := c.Run(ctx, ip)
		Expect(err).To(MatchError(ContainSubstring("failed to execute ping")))
	})

	It("kills a ping when the context gets cancelled", NodeTimeout(10*time.Second), func(ctx context.Context) {
		c := &Command{Executable: fakePing(`echo "PING"; exec sleep 30`), Count: 4, Timeout: time.Second}
		ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer cancel()
		start := time.Now()
		_, err := c.Run(ctx, ip)
		Expect(err).To(MatchError(ContainSubstring("failed to execute ping")))
		Expect(time.Since(start)).To(BeNumerically("<", 5*time.Second))
	})

})
