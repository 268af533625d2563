// ABOUTME: Request DTOs for report and render endpoints
// ABOUTME: Provides validation tags and topic resolution for incoming requests

package requests

import (
	"strings"

	"pakgov-intel/core/presets"
)

// ReportRequest asks for a briefing on a topic or a preset
type ReportRequest struct {
	// Topic is the free-text query
	Topic string `json:"topic,omitempty" maxLength:"500" doc:"Free-text topic to research"`

	// Preset selects one of the built-in topics by id; it wins over Topic
	Preset string `json:"preset,omitempty" doc:"Preset id, e.g. economy or energy"`
}

// ResolveTopic returns the query to send. A known preset yields its query;
// an unknown preset returns ok=false.
func (r *ReportRequest) ResolveTopic() (topic string, ok bool) {
	if id := strings.TrimSpace(r.Preset); id != "" {
		p, found := presets.Find(id)
		if !found {
			return "", false
		}
		return p.Query, true
	}
	return r.Topic, true
}

// RenderRequest carries raw markdown to turn into blocks
type RenderRequest struct {
	Content string `json:"content" maxLength:"200000" doc:"Markdown text to render"`
}
