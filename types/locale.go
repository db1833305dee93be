// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"strings"
)

// Locale selects the language of the ping utility output to expect.
type Locale int

// The supported locales.
const (
	English Locale = iota
	Chinese        // Simplified Chinese, zh-CN.
)

// String returns the BCP 47 tag of a Locale value.
func (l Locale) String() string {
	switch l {
	case English:
		return "en-US"
	case Chinese:
		return "zh-CN"
	}
	return fmt.Sprintf("Locale(%d)", l)
}

// ParseLocale maps a locale name in either BCP 47 or POSIX notation, such as
// "zh-Hans-CN" or "zh_CN.UTF-8", to a Locale. Anything not simplified Chinese
// is English.
func ParseLocale(name string) Locale {
	name = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if strings.HasPrefix(name, "zh-cn") || strings.HasPrefix(name, "zh-hans") {
		return Chinese
	}
	return English
}
