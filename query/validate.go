// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package query

import "net/url"

// ValidateDomain checks that the specified domain name yields a host name when
// used as the authority of a URL, returning that host name. Otherwise, it
// returns [ErrInvalidDomain].
func ValidateDomain(domain string) (string, error) {
	u, err := url.Parse("https://" + domain)
	if err != nil {
		return "", ErrInvalidDomain
	}
	host := u.Hostname()
	if host == "" {
		return "", ErrInvalidDomain
	}
	return host, nil
}
