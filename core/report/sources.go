// ABOUTME: Citation normalization for grounding chunks returned with a report
// ABOUTME: Parses each web citation into a SourceItem and deduplicates by URI

package report

import (
	"fmt"
	"net/url"
	"strings"

	"pakgov-intel/core/domain"
)

const (
	unknownSourceTitle = "Unknown Source"
	missingURI         = "#"
)

// CitationError reports a citation whose URI could not be parsed
type CitationError struct {
	URI string
	Err error
}

// Error implements the error interface
func (e *CitationError) Error() string {
	return fmt.Sprintf("invalid citation uri %q: %v", e.URI, e.Err)
}

// Unwrap exposes the parse failure
func (e *CitationError) Unwrap() error {
	return e.Err
}

// parseCitation turns one web citation into a SourceItem.
// A missing URI becomes "#" with no hostname; a URI that does not parse is
// rejected with a CitationError.
func parseCitation(web webChunk) (domain.SourceItem, error) {
	item := domain.SourceItem{
		Title: web.Title,
		URI:   web.URI,
	}
	if item.Title == "" {
		item.Title = unknownSourceTitle
	}
	if item.URI == "" {
		item.URI = missingURI
		return item, nil
	}

	host, err := Hostname(web.URI)
	if err != nil {
		return domain.SourceItem{}, &CitationError{URI: web.URI, Err: err}
	}
	item.Source = host
	return item, nil
}

// Hostname returns the lower-cased host of uri without a leading "www.".
// It returns "" with no error when uri parses but names no host.
func Hostname(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www."), nil
}

// dedupeSources keeps one entry per URI. An entry stays at the position its
// URI was first seen, but holds the fields of the last occurrence.
func dedupeSources(items []domain.SourceItem) []domain.SourceItem {
	index := make(map[string]int, len(items))
	unique := make([]domain.SourceItem, 0, len(items))

	for _, item := range items {
		if i, ok := index[item.URI]; ok {
			unique[i] = item
			continue
		}
		index[item.URI] = len(unique)
		unique = append(unique, item)
	}

	return unique
}
