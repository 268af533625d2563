// ABOUTME: Report domain models for generated briefings and their cited sources
// ABOUTME: Defines the normalized result returned by the report requester

package domain

// NoReportText is used when the model returns no report text
const NoReportText = "No report generated."

// SourceItem is one cited web page
type SourceItem struct {
	// Title is the page title, or "Unknown Source"
	Title string `json:"title"`

	// URI is the page address, or "#" when the citation carried none.
	// Sources are deduplicated on this exact string.
	URI string `json:"uri"`

	// Source is the display hostname with a leading "www." removed.
	// Empty when no hostname could be derived from URI.
	Source string `json:"source,omitempty"`
}

// SearchResult is the normalized outcome of one report request
type SearchResult struct {
	// MarkdownReport is the report text in the supported markdown subset
	MarkdownReport string `json:"markdownReport"`

	// Sources holds one entry per unique URI
	Sources []SourceItem `json:"sources"`
}
