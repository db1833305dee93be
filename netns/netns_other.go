// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

//go:build !linux

package netns

import "fmt"

// Supported is true on platforms with network namespaces.
const Supported = false

// Execute always fails with [ErrUnsupported], without calling fn.
func Execute(path string, fn func()) error {
	return fmt.Errorf("cannot switch into network namespace %s: %w", path, ErrUnsupported)
}
