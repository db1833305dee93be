// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package netns

import "errors"

// ErrUnsupported is returned by [Execute] on platforms without network
// namespaces.
var ErrUnsupported = errors.New("network namespaces are supported on Linux only")
