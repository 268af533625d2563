package report

import (
	"errors"
	"testing"

	"pakgov-intel/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostname(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"https://www.example.gov.pk/news", "example.gov.pk"},
		{"https://example.gov.pk/news", "example.gov.pk"},
		{"https://WWW.Finance.GOV.pk", "finance.gov.pk"},
		{"http://www.dawn.com:8080/path?q=1", "dawn.com"},
		{"https://news.www.example.com", "news.www.example.com"},
		{"https://wwwexample.com", "wwwexample.com"},
		{"#", ""},
		{"relative/path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := Hostname(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHostname_ParseError(t *testing.T) {
	for _, uri := range []string{"https://[::1", "http://exa mple.com/%zz", " http://leading-space.pk"} {
		_, err := Hostname(uri)
		assert.Error(t, err, uri)
	}
}

func TestParseCitation(t *testing.T) {
	tests := []struct {
		name     string
		web      webChunk
		expected domain.SourceItem
	}{
		{
			name:     "complete citation",
			web:      webChunk{URI: "https://www.pid.gov.pk/a", Title: "PID"},
			expected: domain.SourceItem{Title: "PID", URI: "https://www.pid.gov.pk/a", Source: "pid.gov.pk"},
		},
		{
			name:     "missing title",
			web:      webChunk{URI: "https://pid.gov.pk"},
			expected: domain.SourceItem{Title: "Unknown Source", URI: "https://pid.gov.pk", Source: "pid.gov.pk"},
		},
		{
			name:     "missing uri",
			web:      webChunk{Title: "PID"},
			expected: domain.SourceItem{Title: "PID", URI: "#"},
		},
		{
			name:     "empty citation",
			web:      webChunk{},
			expected: domain.SourceItem{Title: "Unknown Source", URI: "#"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCitation(tt.web)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCitation_MalformedURI(t *testing.T) {
	_, err := parseCitation(webChunk{URI: "https://[::1", Title: "Broken"})

	require.Error(t, err)
	var citationErr *CitationError
	require.True(t, errors.As(err, &citationErr))
	assert.Equal(t, "https://[::1", citationErr.URI)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestDedupeSources(t *testing.T) {
	tests := []struct {
		name     string
		input    []domain.SourceItem
		expected []domain.SourceItem
	}{
		{
			name:     "empty",
			input:    nil,
			expected: []domain.SourceItem{},
		},
		{
			name: "no duplicates keeps order",
			input: []domain.SourceItem{
				{URI: "b", Title: "B"},
				{URI: "a", Title: "A"},
			},
			expected: []domain.SourceItem{
				{URI: "b", Title: "B"},
				{URI: "a", Title: "A"},
			},
		},
		{
			name: "last occurrence wins at first position",
			input: []domain.SourceItem{
				{URI: "a"},
				{URI: "b"},
				{URI: "a", Title: "X"},
			},
			expected: []domain.SourceItem{
				{URI: "a", Title: "X"},
				{URI: "b"},
			},
		},
		{
			name: "match is exact and case sensitive",
			input: []domain.SourceItem{
				{URI: "https://a.pk/x"},
				{URI: "https://a.pk/x/"},
				{URI: "http://a.pk/x"},
				{URI: "https://A.pk/x"},
			},
			expected: []domain.SourceItem{
				{URI: "https://a.pk/x"},
				{URI: "https://a.pk/x/"},
				{URI: "http://a.pk/x"},
				{URI: "https://A.pk/x"},
			},
		},
		{
			name: "missing uris collapse on placeholder",
			input: []domain.SourceItem{
				{URI: "#", Title: "one"},
				{URI: "#", Title: "two"},
			},
			expected: []domain.SourceItem{
				{URI: "#", Title: "two"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dedupeSources(tt.input))
		})
	}
}
