// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package messymoby

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	gi "github.com/onsi/ginkgo/v2"
	g "github.com/onsi/gomega"
	s "github.com/thediveo/success"
)

// SleeperImage is the image of test containers that just sleep.
const SleeperImage = "busybox:latest"

// StartSleeper starts a labelled test container with the specified name that
// does nothing but sleep, returning the PID of its initial process. The
// container gets forcefully removed at the end of the current spec.
func StartSleeper(ctx context.Context, cln *client.Client, name string) int {
	gi.GinkgoHelper()

	pull := s.Successful(cln.ImagePull(ctx, SleeperImage, types.ImagePullOptions{}))
	_, _ = io.Copy(io.Discard, pull)
	_ = pull.Close()

	_ = cln.ContainerRemove(ctx, name, types.ContainerRemoveOptions{Force: true})
	created := s.Successful(cln.ContainerCreate(ctx,
		&container.Config{
			Image:  SleeperImage,
			Cmd:    []string{"sleep", "3600"},
			Labels: map[string]string{MessyMobyLabel: ""},
		},
		nil, nil, nil, name))
	gi.DeferCleanup(func(ctx context.Context) {
		_ = cln.ContainerRemove(ctx, created.ID, types.ContainerRemoveOptions{Force: true})
	})
	g.Expect(cln.ContainerStart(ctx, created.ID, types.ContainerStartOptions{})).To(g.Succeed())

	details := s.Successful(cln.ContainerInspect(ctx, created.ID))
	g.Expect(details.State.Pid).NotTo(g.BeZero())
	return details.State.Pid
}
