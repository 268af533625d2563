package mappers

import (
	"testing"

	"pakgov-intel/core/domain"
	"pakgov-intel/core/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToReportResponse(t *testing.T) {
	result := &domain.SearchResult{
		MarkdownReport: "# Brief\n* **Tax** cut",
		Sources: []domain.SourceItem{
			{Title: "Dawn", URI: "https://www.dawn.com/a", Source: "dawn.com"},
			{Title: "Unknown Source", URI: "#"},
		},
	}

	resp := ToReportResponse("tax", result)
	require.NotNil(t, resp)

	assert.Equal(t, "tax", resp.Topic)
	assert.Equal(t, result.MarkdownReport, resp.MarkdownReport)
	require.Len(t, resp.Sources, 2)
	assert.Equal(t, "dawn.com", resp.Sources[0].Source)
	assert.Equal(t, "#", resp.Sources[1].URI)
	assert.Empty(t, resp.Sources[1].Source)
	assert.Equal(t, []markdown.Block{
		markdown.Heading1("Brief"),
		markdown.BulletList([]markdown.Span{markdown.Plain(""), markdown.Bold("Tax"), markdown.Plain(" cut")}),
	}, resp.Blocks)
}

func TestToReportResponse_Nil(t *testing.T) {
	assert.Nil(t, ToReportResponse("x", nil))
}

func TestToSourceResponses_EmptyIsNonNil(t *testing.T) {
	out := ToSourceResponses(nil)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestToPresetsResponse(t *testing.T) {
	resp := ToPresetsResponse([]domain.Preset{
		{ID: "a", Label: "A", Query: "qa"},
		{ID: "b", Label: "B", Query: "qb"},
	})

	require.Len(t, resp.Presets, 2)
	assert.Equal(t, "a", resp.Presets[0].ID)
	assert.Equal(t, "qb", resp.Presets[1].Query)
}
