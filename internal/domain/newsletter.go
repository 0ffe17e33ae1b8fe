package domain

import "time"

// NewsletterRecord is one newsletter email as delivered by the mail-access
// collaborator. The pipeline treats it as read-only input.
type NewsletterRecord struct {
	Subject string
	Sender  string
	Date    string // opaque header value, passed through unchanged
	RawHTML string
}

// ExtractedLink is a candidate article link found in one newsletter,
// unique by decoded URL within that newsletter.
type ExtractedLink struct {
	URL                string
	CuratorDescription *string
}

// ResolveStatus reports the outcome of one redirect resolution.
type ResolveStatus string

const (
	ResolveSuccess ResolveStatus = "success"
	ResolveTimeout ResolveStatus = "timeout"
	ResolveError   ResolveStatus = "error"
)

// ResolvedLink is the immutable result of following redirects for one URL.
type ResolvedLink struct {
	OriginalURL string
	ResolvedURL *string
	IsRedirect  bool
	Status      ResolveStatus
	Attempts    int
}

// FilterDecision is the classifier's verdict for one resolved URL.
// Reason is always set; accepted links carry "accepted".
type FilterDecision struct {
	URL      string
	Accepted bool
	Reason   string
}

// Article is one accepted content link within a newsletter.
type Article struct {
	URL                string
	OriginalURL        *string // set when the link arrived via a redirect
	CuratorDescription *string
}

// NewsletterResult is the pipeline output for one newsletter. A newsletter
// that yields no accepted links is kept with an empty Articles slice so
// callers can tell "no links" from "never processed".
type NewsletterResult struct {
	Subject  string
	Sender   string
	Date     string
	Articles []Article
	Rejected []FilterDecision
}

// RunStats aggregates counters for one pipeline run.
type RunStats struct {
	Newsletters     int
	LinksFound      int
	JunkFiltered    int
	Duplicates      int
	Resolved        int
	ResolveFailures int
	Accepted        int
	Rejected        int
	Duration        time.Duration
}

// FetchParams bounds what the newsletter source should return.
type FetchParams struct {
	DaysBack   int
	MaxResults int
	Senders    []string
}

// Extraction is one persisted pipeline run.
type Extraction struct {
	ID         string
	CreatedAt  time.Time
	DaysBack   int
	MaxResults int
	Results    []NewsletterResult
}
