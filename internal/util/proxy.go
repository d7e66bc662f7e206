package util

import (
	"fmt"
	"net/http"
	"net/url"
)

// NewProxyFunc picks the proxy for requests to the detection service.
// Explicit proxy URLs win per scheme; otherwise HTTP_PROXY, HTTPS_PROXY and
// NO_PROXY apply. Proxy URLs are parsed once so a typo fails at startup.
func NewProxyFunc(httpProxy, httpsProxy string) (func(*http.Request) (*url.URL, error), error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment, nil
	}

	byScheme := make(map[string]*url.URL, 2)
	for scheme, raw := range map[string]string{"http": httpProxy, "https": httpsProxy} {
		if raw == "" {
			continue
		}
		u, err := parseProxyURL(raw)
		if err != nil {
			return nil, fmt.Errorf("%s proxy: %w", scheme, err)
		}
		byScheme[scheme] = u
	}

	return func(req *http.Request) (*url.URL, error) {
		if u, ok := byScheme[req.URL.Scheme]; ok {
			return u, nil
		}
		return http.ProxyFromEnvironment(req)
	}, nil
}

func parseProxyURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https", "socks5":
	default:
		return nil, fmt.Errorf("parse %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse %q: missing host", raw)
	}
	return u, nil
}
