// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package query

import "errors"

// Errors ending a pipeline run early.
var (
	ErrInvalidDomain = errors.New("invalid domain name format")
	ErrNoNameservers = errors.New("no valid nameservers found")
)
