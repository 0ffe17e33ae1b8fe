package resolve

import "strings"

// Markers of navigational/administrative links that never reach the
// network: unsubscribe flows, preference centers, images, legal pages.
var junkMarkers = []string{
	"unsubscribe",
	"preferences",
	"settings",
	"privacy-policy",
	"terms-of-service",
	"mailto:",
	"tel:",
	"/cdn-cgi/",
	"favicon",
	".png",
	".jpg",
	".jpeg",
	".gif",
	".svg",
	".ico",
	"mail_preferences",
	"email_preferences",
}

// Markers that identify tracking/redirector URLs; links without any of
// these are "direct" and resolved ahead of tracking links.
var trackingMarkers = []string{
	"link.",
	"/c?",
	"/fb/",
	"/click/",
	"/track/",
	"/redirect/",
	"/r/",
}

// IsJunk reports whether a URL is obviously not content and should be
// dropped before any resolution attempt.
func IsJunk(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, marker := range junkMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsTracking reports whether a URL looks like a tracking redirector
// rather than a direct content link.
func IsTracking(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, marker := range trackingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
