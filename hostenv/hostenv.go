// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package hostenv

import (
	"os"
	"runtime"

	"github.com/siemens/digrank/types"

	"github.com/thediveo/lxkns/log"
)

// localeEnvVars are the POSIX locale environment variables in order of
// precedence.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Platform returns the ping utility family of the host OS.
func Platform() types.Platform {
	return types.PlatformOf(runtime.GOOS)
}

// Locale returns the host locale.
func Locale() types.Locale {
	name := localeName()
	locale := types.ParseLocale(name)
	log.Debugf("host locale %q, using %s ping output patterns", name, locale)
	return locale
}

// envLocaleName returns the first non-empty locale environment variable value,
// or "" if none is set.
func envLocaleName(getenv func(string) string) string {
	for _, name := range localeEnvVars {
		if value := getenv(name); value != "" {
			return value
		}
	}
	return ""
}

var getenv = os.Getenv
