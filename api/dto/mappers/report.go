// ABOUTME: Mappers for converting report domain models to API DTOs
// ABOUTME: Keeps the markdown rendering step out of the handlers

package mappers

import (
	"pakgov-intel/api/dto/responses"
	"pakgov-intel/core/domain"
	"pakgov-intel/core/markdown"
)

// ToReportResponse converts a search result for topic into a response DTO
func ToReportResponse(topic string, result *domain.SearchResult) *responses.ReportResponse {
	if result == nil {
		return nil
	}

	return &responses.ReportResponse{
		Topic:          topic,
		MarkdownReport: result.MarkdownReport,
		Sources:        ToSourceResponses(result.Sources),
		Blocks:         markdown.Render(result.MarkdownReport),
	}
}

// ToSourceResponses converts source items, never returning nil
func ToSourceResponses(sources []domain.SourceItem) []responses.SourceResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for _, s := range sources {
		out = append(out, responses.SourceResponse{
			Title:  s.Title,
			URI:    s.URI,
			Source: s.Source,
		})
	}
	return out
}

// ToPresetsResponse converts presets in order
func ToPresetsResponse(presets []domain.Preset) *responses.PresetsResponse {
	out := &responses.PresetsResponse{
		Presets: make([]responses.PresetResponse, 0, len(presets)),
	}
	for _, p := range presets {
		out.Presets = append(out.Presets, responses.PresetResponse{
			ID:    p.ID,
			Label: p.Label,
			Query: p.Query,
		})
	}
	return out
}
