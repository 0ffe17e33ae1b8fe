// Package extract pulls candidate article links out of newsletter HTML,
// together with any curator commentary found near each link.
package extract

import (
	"html"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsletter_pipeline/internal/domain"
)

const (
	minHeadlineLen    = 15
	minContextLen     = 50
	maxAncestorLevels = 5
	maxDescriptionLen = 300
)

// Button and navigation labels that never describe the linked article.
var buttonPhrases = map[string]struct{}{
	"TRY NOW":           {},
	"LEARN MORE":        {},
	"START SECURE AUTH": {},
	"SUBSCRIBE":         {},
	"GET STARTED":       {},
	"SIGN UP":           {},
	"VIEW ALL":          {},
	"READ MORE":         {},
	"CLICK HERE":        {},
}

// Curator boilerplate stripped from the front of discovered context.
var curatorPrefixes = []string{
	"The Rundown:",
	"The details:",
}

// Extractor scans one newsletter's HTML for links.
type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger.With("component", "extractor")}
}

// Extract returns the newsletter's links in document order, de-duplicated
// by decoded URL. A newsletter whose HTML cannot be parsed degrades to an
// empty list rather than an error.
func (e *Extractor) Extract(rawHTML string) []domain.ExtractedLink {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		e.logger.Warn("parse newsletter html", "error", err)
		return nil
	}

	seen := map[string]struct{}{}
	var links []domain.ExtractedLink

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		u := strings.TrimSpace(html.UnescapeString(href))
		if u == "" {
			return
		}
		if _, dup := seen[u]; dup {
			return
		}
		seen[u] = struct{}{}

		links = append(links, domain.ExtractedLink{
			URL:                u,
			CuratorDescription: describeLink(a),
		})
	})

	return links
}

// describeLink builds the curator description for one anchor: the link's
// own headline text when usable, enriched with surrounding commentary
// found by walking up the ancestor chain.
func describeLink(a *goquery.Selection) *string {
	headline := collapseSpace(a.Text())
	if !usableHeadline(headline) {
		headline = ""
	}

	context := ancestorContext(a)
	if headline == "" && context == "" {
		context = parentContext(a)
	}

	var out string
	switch {
	case headline != "" && context != "":
		out = headline + " - " + context
	case headline != "":
		out = headline
	case context != "":
		out = context
	default:
		return nil
	}

	out = truncate(out, maxDescriptionLen)
	return &out
}

// ancestorContext walks up to maxAncestorLevels ancestors and scans each
// level's following-sibling paragraph and table-cell elements for the
// first substantial run of text.
func ancestorContext(a *goquery.Selection) string {
	node := a
	for level := 0; level < maxAncestorLevels; level++ {
		node = node.Parent()
		if node.Length() == 0 {
			break
		}

		found := ""
		node.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if !sib.Is("p") && !sib.Is("td") {
				return true
			}
			text := stripCuratorPrefixes(collapseSpace(sib.Text()))
			if len(text) >= minContextLen {
				found = text
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// parentContext is the last resort: the immediate parent's text with the
// link's own text removed.
func parentContext(a *goquery.Selection) string {
	parent := a.Parent()
	if parent.Length() == 0 {
		return ""
	}
	text := strings.Replace(parent.Text(), a.Text(), "", 1)
	text = stripCuratorPrefixes(collapseSpace(text))
	if len(text) < minHeadlineLen {
		return ""
	}
	return text
}

func usableHeadline(text string) bool {
	if len(text) < minHeadlineLen {
		return false
	}
	if _, skip := buttonPhrases[text]; skip {
		return false
	}
	// All-caps strings are buttons or section banners, not headlines.
	if text == strings.ToUpper(text) && text != strings.ToLower(text) {
		return false
	}
	return true
}

func stripCuratorPrefixes(text string) string {
	for _, prefix := range curatorPrefixes {
		text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
	}
	return text
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
