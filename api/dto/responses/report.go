// ABOUTME: Response DTOs for report, render and preset endpoints
// ABOUTME: Reports carry both the raw markdown and its rendered blocks

package responses

import "pakgov-intel/core/markdown"

// SourceResponse is one deduplicated citation
type SourceResponse struct {
	Title  string `json:"title" doc:"Citation title, 'Unknown Source' when absent"`
	URI    string `json:"uri" doc:"Citation link, '#' when absent"`
	Source string `json:"source,omitempty" doc:"Hostname without a leading www."`
}

// ReportResponse is the result of a report request
type ReportResponse struct {
	Topic          string           `json:"topic"`
	MarkdownReport string           `json:"markdownReport"`
	Sources        []SourceResponse `json:"sources"`
	Blocks         []markdown.Block `json:"blocks"`
}

// RenderResponse holds rendered markdown blocks
type RenderResponse struct {
	Blocks []markdown.Block `json:"blocks"`
}

// PresetResponse describes a canned topic
type PresetResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Query string `json:"query"`
}

// PresetsResponse lists the canned topics
type PresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}
