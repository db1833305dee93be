// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package mobynet

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/thediveo/lxkns/log"
)

// Inspector inspects containers, such as a Docker [client.Client] does.
type Inspector interface {
	ContainerInspect(ctx context.Context, container string) (types.ContainerJSON, error)
}

var _ Inspector = (*client.Client)(nil)

// NewClient returns a new Docker client, configured from the usual DOCKER_HOST
// et al. environment variables and negotiating the API version.
func NewClient() (*client.Client, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// ContainerNetns returns the filesystem path referencing the network
// namespace of the running container with the specified name or ID, such as
// "/proc/666/ns/net". The path stays valid only as long as the container's
// initial process keeps running.
func ContainerNetns(ctx context.Context, moby Inspector, nameOrID string) (string, error) {
	details, err := moby.ContainerInspect(ctx, nameOrID)
	if err != nil {
		return "", fmt.Errorf("cannot inspect container '%s': %w", nameOrID, err)
	}
	if details.ContainerJSONBase == nil || details.State == nil || details.State.Pid == 0 {
		return "", fmt.Errorf("container '%s' is not running", nameOrID)
	}
	netnsref := fmt.Sprintf("/proc/%d/ns/net", details.State.Pid)
	log.Debugf("container '%s' network namespace: %s", nameOrID, netnsref)
	return netnsref, nil
}
