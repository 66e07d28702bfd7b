package webeater

// Image is an image found inside the selected content region.
type Image struct {
	Alt string `json:"alt"`
	URL string `json:"url"`
}

// Link is a hyperlink found inside the selected content region.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title from the document head.
	Title string

	// ContentHTML is the selected main content region as HTML, with every
	// element matching the removal rules deleted.
	ContentHTML string

	// Text is the whitespace-normalized text of the content region.
	Text string

	// Selector is the main-content selector that won, or "" when extraction
	// fell back to the post-removal document body.
	Selector string

	// Removed counts the elements deleted by the removal rules.
	Removed int

	// Images and Links found inside the content region, with URLs resolved
	// against the page URL.
	Images []Image
	Links  []Link

	// Diagnostics reports selectors that were skipped as invalid.
	Diagnostics []Diagnostic
}

// Extractor extracts main content from HTML pages. Implementations parse
// the HTML into their own working copy: the caller's input is never
// mutated, and the engine stays independent of any particular HTML library.
//
// Implementations that honor hints remove every element matching the
// removal rule, then select the content node with the first main-content
// selector that matches non-trivial content. Implementations with their own
// content heuristics may ignore the hints entirely.
type Extractor interface {
	Extract(pageURL, html string, hints Hint) (*ExtractResult, error)
}
