package domain

// CuratorPolicy controls how strictly a curator's own domain is blocked.
type CuratorPolicy string

const (
	// CuratorBlockDomain rejects every URL on the curator's domain.
	CuratorBlockDomain CuratorPolicy = "domain"
	// CuratorBlockHomepage rejects only the curator's homepage, empty
	// paths, idref-tagged links and /email/ paths; deep article paths
	// fall through to the remaining rules.
	CuratorBlockHomepage CuratorPolicy = "homepage"
)

// FilterConfig is the rule set the content classifier runs against.
// A run snapshots one instance at start and never sees later edits.
// The JSON keys are the stored document format and part of the API.
type FilterConfig struct {
	WhitelistDomains  []string `json:"whitelist_domains"`
	BlacklistDomains  []string `json:"blacklist_domains"`
	CuratorDomains    []string `json:"curator_domains"`
	ContentIndicators []string `json:"content_indicators"`

	// CuratorPolicies maps a curator domain to its blocking policy.
	// Curators without an entry default to CuratorBlockDomain.
	CuratorPolicies map[string]CuratorPolicy `json:"curator_policies"`
}

// DefaultFilterConfig returns the built-in rule set used when no
// configuration document is stored.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		WhitelistDomains: []string{
			"techcrunch.com", "theverge.com", "wired.com", "arstechnica.com",
			"reuters.com", "bloomberg.com", "wsj.com", "nytimes.com",
			"medium.com", "substack.com", "dev.to", "hackernoon.com",
			"github.com", "arxiv.org", "huggingface.co",
			"blog.google", "github.blog", "openai.com",
		},
		BlacklistDomains: []string{
			"typeform.com", "mailchi.mp", "surveymonkey.com",
		},
		CuratorDomains: []string{
			"alphasignal.ai", "therundown.ai", "rundown.ai",
		},
		ContentIndicators: []string{
			"/blog/", "/article/", "/news/", "/post/", "/story/",
			"/2024/", "/2025/", "/2026/",
			"/p/", "/thread/", "/status/",
			"/watch?v=", "/v/",
			"/guides/", "/guide/",
			"/collections/", "/resources/",
		},
		CuratorPolicies: map[string]CuratorPolicy{
			"alphasignal.ai": CuratorBlockHomepage,
			"therundown.ai":  CuratorBlockDomain,
			"rundown.ai":     CuratorBlockDomain,
		},
	}
}
