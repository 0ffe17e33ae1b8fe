// Package urlutil normalizes URLs into a stable identity form used as
// cache keys and final output.
package urlutil

import (
	"net/url"
	"strings"
)

// Query parameters that carry tracking state rather than content identity.
var trackingParams = map[string]struct{}{
	"mc_cid": {},
	"mc_eid": {},
	"fbclid": {},
	"gclid":  {},
	"ref":    {},
	"source": {},
}

// Hosts whose query parameters are meaningful and must survive
// canonicalization untouched.
var preserveParamHosts = []string{
	"youtube.com",
	"news.ycombinator.com",
}

// Canonicalize lowercases the host, strips known tracking parameters and
// drops the fragment. It is total: on any parse failure or a non-HTTP
// scheme the input is returned unchanged.
func Canonicalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return raw
	}

	u.Host = strings.ToLower(u.Host)

	if !preservesParams(u.Host) && u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			if isTracking(key) {
				q.Del(key)
			}
		}
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

func isTracking(key string) bool {
	if strings.HasPrefix(strings.ToLower(key), "utm_") {
		return true
	}
	_, ok := trackingParams[strings.ToLower(key)]
	return ok
}

func preservesParams(host string) bool {
	for _, h := range preserveParamHosts {
		if strings.Contains(host, h) {
			return true
		}
	}
	return false
}
