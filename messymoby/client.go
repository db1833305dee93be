// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package messymoby

import (
	"context"
	"time"

	"github.com/docker/docker/client"

	gi "github.com/onsi/ginkgo/v2"
	s "github.com/thediveo/success"
)

// MessyMobyLabel is the name of a “magic” label for tagging testing-related
// containers.
const MessyMobyLabel = "messymoby"

// NewClient returns a new Docker client connected to the default socket API
// location on the local host.
func NewClient() *client.Client {
	gi.GinkgoHelper()

	return s.Successful(client.NewClientWithOpts(
		client.WithHost("unix:///var/run/docker.sock"),
		client.WithAPIVersionNegotiation(),
	))
}

// Available returns true if a Docker daemon answers on the default socket API
// location.
func Available(ctx context.Context) bool {
	cln, err := client.NewClientWithOpts(
		client.WithHost("unix:///var/run/docker.sock"),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return false
	}
	defer cln.Close()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err = cln.Ping(ctx)
	return err == nil
}

// Cleanup removes dead test containers.
func Cleanup(ctx context.Context) {
	cln := NewClient()
	defer cln.Close()
	_ = RemoveDeadTestContainers(ctx, cln, MessyMobyLabel)
}
