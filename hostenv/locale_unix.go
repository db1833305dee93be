// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

//go:build !windows

package hostenv

func localeName() string {
	return envLocaleName(getenv)
}
