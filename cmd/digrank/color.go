// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	foundAddressStyle  = termenv.Style{}.Foreground(termenv.ANSICyan)
	rankedAddressStyle = termenv.Style{}.Foreground(termenv.ANSIGreen)
	failureStyle       = termenv.Style{}.Foreground(termenv.ANSIRed)
	statusStyle        = termenv.Style{}.Foreground(termenv.ANSIYellow)
)

var sectionStyle = termenv.Style{}.Bold()
