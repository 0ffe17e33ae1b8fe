// Package filter classifies resolved URLs as genuine article content or
// noise, using the configurable whitelist/blacklist/curator rule set.
package filter

import (
	"net/url"
	"strings"

	"newsletter_pipeline/internal/domain"
)

// ReasonAccepted is the reason attached to every accepted decision.
const ReasonAccepted = "accepted"

var authPathPatterns = []string{"/signin", "/login", "/identifier", "/signup", "/register"}

var authHostPatterns = []string{"accounts.google.com", "login.microsoft.com", "auth."}

var appStoreHosts = []string{"apps.apple.com", "play.google.com"}

var profilePatterns = []string{
	"linkedin.com/school/",
	"linkedin.com/company/",
	"youtube.com/channel/",
	"youtube.com/user/",
}

var accountPathKeywords = []string{"mail_preferences", "account/settings", "user/profile"}

var educationalHostPatterns = []string{"academy.", "learn.", "training."}

// Classify decides whether a resolved URL points at genuine content.
// It is pure and performs no I/O; rules are evaluated in a fixed order
// and the first match wins.
func Classify(rawURL string, cfg domain.FilterConfig) domain.FilterDecision {
	reject := func(reason string) domain.FilterDecision {
		return domain.FilterDecision{URL: rawURL, Accepted: false, Reason: reason}
	}

	if rawURL == "" {
		return reject("invalid URL")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return reject("invalid URL")
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := strings.ToLower(u.Path)
	trimmedPath := strings.Trim(path, "/")

	for _, blocked := range cfg.BlacklistDomains {
		if strings.Contains(host, blocked) {
			return reject("blacklisted domain")
		}
	}

	for _, curator := range cfg.CuratorDomains {
		if !strings.Contains(host, curator) {
			continue
		}
		policy := cfg.CuratorPolicies[curator]
		if policy == "" {
			policy = domain.CuratorBlockDomain
		}
		if policy == domain.CuratorBlockDomain {
			return reject("newsletter curator origin, not curated content")
		}
		// Homepage policy: deep article paths on the curator's own
		// domain are still allowed through to the remaining rules.
		if trimmedPath == "" || trimmedPath == "index.html" ||
			strings.Contains(u.RawQuery, "idref") || strings.Contains(path, "/email/") {
			return reject("newsletter curator homepage")
		}
	}

	for _, auth := range authHostPatterns {
		if strings.Contains(host, auth) {
			return reject("auth page")
		}
	}
	for _, auth := range authPathPatterns {
		if strings.Contains(path, auth) {
			return reject("auth page")
		}
	}

	for _, store := range appStoreHosts {
		if strings.Contains(host, store) {
			return reject("app store listing")
		}
	}

	hostAndPath := host + "/" + trimmedPath
	for _, profile := range profilePatterns {
		if strings.Contains(hostAndPath, profile) {
			return reject("profile page, not content")
		}
	}

	for _, keyword := range accountPathKeywords {
		if strings.Contains(trimmedPath, keyword) {
			return reject("account or settings page")
		}
	}

	// Platform minimum-specificity rules.
	if strings.Contains(host, "github.com") && !strings.Contains(trimmedPath, "/") {
		return reject("github repo required, not the homepage")
	}
	if strings.Contains(host, "x.com") || strings.Contains(host, "twitter.com") {
		if !strings.Contains(path, "/status/") {
			return reject("tweet permalink required, not a profile")
		}
	}
	if strings.Contains(host, "medium.com") &&
		!strings.Contains(path, "/@") && !strings.Contains(path, "/p/") {
		return reject("medium post path required")
	}
	if strings.Contains(host, "substack.com") && !strings.Contains(path, "/p/") {
		return reject("substack post path required")
	}

	for _, listed := range cfg.WhitelistDomains {
		if strings.Contains(host, listed) {
			return accept(rawURL)
		}
	}
	for _, edu := range educationalHostPatterns {
		if strings.Contains(host, edu) {
			return accept(rawURL)
		}
	}
	fullPath := path
	if u.RawQuery != "" {
		fullPath = path + "?" + strings.ToLower(u.RawQuery)
	}
	for _, indicator := range cfg.ContentIndicators {
		if strings.Contains(fullPath, indicator) {
			return accept(rawURL)
		}
	}

	return reject("does not match content criteria")
}

func accept(rawURL string) domain.FilterDecision {
	return domain.FilterDecision{URL: rawURL, Accepted: true, Reason: ReasonAccepted}
}
