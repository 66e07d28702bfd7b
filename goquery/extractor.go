// Package goquery implements the hint-driven content extractor.
// It removes noise elements matching the resolved removal rules, then
// locates the main content region by walking the main-content selector
// chain in order.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/tiagrib/webeater"
)

// Ensure Extractor implements webeater.Extractor at compile time.
var _ webeater.Extractor = (*Extractor)(nil)

// Extractor extracts main content from HTML using the resolved hints.
// Each call parses the HTML into its own document, so an Extractor is safe
// for concurrent use and never mutates caller-owned data.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract removes every element matching the removal rules, then selects
// the content node with the first main-content selector that matches
// non-trivial content. With no winning selector the post-removal body is
// used. Invalid selectors are skipped and reported as diagnostics, never as
// errors.
func (e *Extractor) Extract(pageURL, rawHTML string, hints webeater.Hint) (*webeater.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webeater.Errorf(webeater.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webeater.Errorf(webeater.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &webeater.ExtractResult{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Removed: removeNoise(doc, hints.Remove),
	}

	content := selectContent(doc, hints.Main, result)

	result.ContentHTML, err = goquery.OuterHtml(content)
	if err != nil {
		return nil, webeater.Errorf(webeater.EINTERNAL, "failed to serialize content: %v", err)
	}
	result.Text = webeater.NormalizeWhitespace(content.Text())

	base, _ := url.Parse(pageURL)
	result.Images = collectImages(content, base)
	result.Links = collectLinks(content, base)

	return result, nil
}

// removeNoise deletes every element whose tag, class tokens, or id match
// the removal rule and returns the number of elements removed. The three
// predicates are independent: removal order does not affect the final tree.
func removeNoise(doc *goquery.Document, rule webeater.RemovalRule) int {
	removed := 0

	for _, tag := range rule.Tags {
		// Compile instead of Find: goquery panics on selectors that do not
		// parse, and tag names come from user hint files.
		matcher, err := cascadia.Compile(tag)
		if err != nil {
			continue
		}
		doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
			sel.Remove()
			removed++
		})
	}

	if len(rule.Classes) > 0 {
		classes := toSet(rule.Classes)
		doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
			attr, _ := sel.Attr("class")
			for _, token := range strings.Fields(attr) {
				if _, ok := classes[token]; ok {
					sel.Remove()
					removed++
					return
				}
			}
		})
	}

	if len(rule.IDs) > 0 {
		ids := toSet(rule.IDs)
		doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
			id, _ := sel.Attr("id")
			if _, ok := ids[id]; ok {
				sel.Remove()
				removed++
			}
		})
	}

	return removed
}

// selectContent walks the selector chain in order and returns the first
// match with non-trivial content, falling back to the post-removal body.
// Skipped selectors are appended to result.Diagnostics; the winning
// selector is recorded in result.Selector.
func selectContent(doc *goquery.Document, rule webeater.MainContentRule, result *webeater.ExtractResult) *goquery.Selection {
	for _, selector := range rule.Selectors {
		matcher, err := cascadia.Compile(selector)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, webeater.Diagnostic{
				Source:  "selector:" + selector,
				Code:    webeater.EINVALID,
				Message: err.Error(),
			})
			continue
		}

		var winner *goquery.Selection
		doc.FindMatcher(matcher).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if webeater.NormalizeWhitespace(sel.Text()) == "" {
				return true
			}
			winner = sel
			return false
		})
		if winner != nil {
			result.Selector = selector
			return winner
		}
	}

	// The html parser synthesizes a body element; it can only be missing
	// when a removal rule deleted it.
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return doc.Selection
	}
	return body
}

// collectImages gathers images inside the content region as alt/URL pairs.
func collectImages(content *goquery.Selection, base *url.URL) []webeater.Image {
	var images []webeater.Image
	content.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" {
			return
		}
		alt := strings.TrimSpace(sel.AttrOr("alt", ""))
		if alt == "" {
			alt = "Image"
		}
		images = append(images, webeater.Image{Alt: alt, URL: resolveURL(base, src)})
	})
	return images
}

// collectLinks gathers hyperlinks inside the content region, skipping
// script, anchor-only, and mail links.
func collectLinks(content *goquery.Selection, base *url.URL) []webeater.Link {
	var links []webeater.Link
	content.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}
		text := strings.TrimSpace(sel.Text())
		resolved := resolveURL(base, href)
		if text == "" {
			text = resolved
		}
		links = append(links, webeater.Link{Text: text, URL: resolved})
	})
	return links
}

// resolveURL resolves href against the page URL. The href is returned
// unchanged when either side cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href should be skipped when collecting links.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "#")
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
