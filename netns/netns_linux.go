// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

//go:build linux

package netns

import (
	"fmt"

	"github.com/thediveo/lxkns/ops"
	"github.com/thediveo/lxkns/species"
)

// Supported is true on platforms with network namespaces.
const Supported = true

// Execute calls fn on a locked OS-level thread switched into the network
// namespace referenced by path, switching back afterwards. fn isn't called at
// all if switching fails.
func Execute(path string, fn func()) error {
	// lxkns' ops.Execute differentiates between a namespace switching error
	// and the result of the function called while switched.
	_, err := ops.Execute(func() interface{} {
		fn()
		return nil
	}, ops.NewTypedNamespacePath(path, species.CLONE_NEWNET))
	if err != nil {
		return fmt.Errorf("cannot switch into network namespace: %w", err)
	}
	return nil
}
