package util

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var (
	// ErrEmptyURL is returned when nothing was entered
	ErrEmptyURL = errors.New("url is required")
	// ErrInvalidURL is returned when the input is not an absolute URL
	ErrInvalidURL = errors.New("invalid url")
)

// hostProfile maps hosts like a browser's URL parser does: lookup mapping and
// bidi rules without the STD3 ASCII restrictions, so underscores pass.
var hostProfile = idna.New(idna.MapForLookup(), idna.BidiRule(), idna.StrictDomainName(false))

// NormalizeURLInput applies the checks a URL form field performs before it
// lets a form submit: surrounding whitespace is dropped, the value must be
// non-empty and must be an absolute URL. Hierarchical URLs need a host that
// survives IDNA mapping; labels with leading or trailing hyphens are refused.
// The trimmed input is returned unchanged otherwise; the service receives
// what the user typed.
func NormalizeURLInput(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyURL
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("%w: missing scheme", ErrInvalidURL)
	}
	if u.Opaque != "" {
		return s, nil
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	if net.ParseIP(host) != nil {
		return s, nil
	}
	if _, err := hostProfile.ToASCII(host); err != nil {
		return "", fmt.Errorf("%w: host %q: %v", ErrInvalidURL, host, err)
	}

	return s, nil
}
