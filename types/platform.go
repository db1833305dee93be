// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Platform is the host OS family, as far as the ping utility's command line
// syntax and output format are concerned.
type Platform int

// The ping utility families.
const (
	Linux   Platform = iota // iputils/busybox style, also used for other unix systems.
	Darwin                  // BSD style ping on macOS.
	Windows                 // ping.exe
)

// String returns the clear-text representation of a Platform value.
func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	}
	return fmt.Sprintf("Platform(%d)", p)
}

// PlatformOf maps a GOOS value to its ping utility family.
func PlatformOf(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin", "ios", "freebsd", "netbsd", "openbsd", "dragonfly":
		return Darwin
	default:
		return Linux
	}
}
