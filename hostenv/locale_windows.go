// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

//go:build windows

package hostenv

import "golang.org/x/sys/windows"

// localeName returns the user's most preferred UI language, falling back to
// the POSIX environment variables as set by MSYS and friends.
func localeName() string {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err == nil && len(langs) > 0 && langs[0] != "" {
		return langs[0]
	}
	return envLocaleName(getenv)
}
