// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/netip"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/siemens/digrank/types"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// ErrNoOutput is returned when the ping utility terminated without any output.
var ErrNoOutput = errors.New("ping produced no output")

// Command probes by running the host's ping utility.
type Command struct {
	Executable string         // defaults to "ping" if empty.
	Platform   types.Platform // ping utility family.
	Count      int            // number of echo requests.
	Timeout    time.Duration  // wait time for each echo reply.
}

var _ Runner = (*Command)(nil)

// Args returns the ping utility's command line arguments for probing the
// specified IP address. Windows and BSD/macOS take the reply wait time in
// milliseconds, iputils in whole seconds.
func (c *Command) Args(ip netip.Addr) []string {
	count := strconv.Itoa(c.Count)
	switch c.Platform {
	case types.Windows:
		return []string{"/n", count, "/w", strconv.FormatInt(maxInt64(c.Timeout.Milliseconds(), 100), 10), ip.String()}
	case types.Darwin:
		return []string{"-c", count, "-W", strconv.FormatInt(maxInt64(c.Timeout.Milliseconds(), 100), 10), ip.String()}
	default:
		return []string{"-c", count, "-W", strconv.FormatInt(maxInt64(int64(c.Timeout/time.Second), 1), 10), ip.String()}
	}
}

// Run the ping utility against the specified IP address and return its
// decoded output. The ping utility signals packet loss through its exit code,
// so a non-zero exit code still returns the output, as long as there is
// output. Failing to start the ping utility, getting it killed, or not getting
// any output are errors.
func (c *Command) Run(ctx context.Context, ip netip.Addr) (string, error) {
	executable := c.Executable
	if executable == "" {
		executable = "ping"
	}
	cmd := exec.CommandContext(ctx, executable, c.Args(ip)...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	output := Decode(c.Platform, stdout.Bytes())
	if err != nil {
		var exiterr *exec.ExitError
		if !errors.As(err, &exiterr) || !exiterr.Exited() || ctx.Err() != nil {
			return "", fmt.Errorf("failed to execute ping: %w", err)
		}
	}
	if strings.TrimSpace(output) == "" {
		return "", ErrNoOutput
	}
	return output, nil
}

// Decode the raw output of a ping utility into text. On Windows, ping.exe
// talks in the OEM code page, which is GBK for simplified Chinese and plain
// ASCII for English. Elsewhere, the output is UTF-8 and gets trimmed.
func Decode(platform types.Platform, output []byte) string {
	if platform == types.Windows {
		text, err := simplifiedchinese.GBK.NewDecoder().Bytes(output)
		if err == nil {
			return string(text)
		}
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(output), "\uFFFD"))
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
