// ABOUTME: Preset handler for the Huma API
// ABOUTME: Lists the canned dashboard topics

package handlers

import (
	"context"
	"net/http"

	"pakgov-intel/api/dto/mappers"
	"pakgov-intel/api/dto/responses"
	"pakgov-intel/core/presets"

	"github.com/danielgtaylor/huma/v2"
)

// PresetHandler serves the preset list
type PresetHandler struct{}

// NewPresetHandler creates a new preset handler
func NewPresetHandler() *PresetHandler {
	return &PresetHandler{}
}

// RegisterRoutes registers the preset route
func (h *PresetHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPresets",
		Method:      http.MethodGet,
		Path:        "/api/v1/presets",
		Summary:     "List topic presets",
		Tags:        []string{"Presets"},
	}, h.ListPresets)
}

// ListPresetsOutput defines the output for the ListPresets operation
type ListPresetsOutput struct {
	Body responses.PresetsResponse
}

// ListPresets handles the GET /api/v1/presets endpoint
func (h *PresetHandler) ListPresets(ctx context.Context, input *struct{}) (*ListPresetsOutput, error) {
	return &ListPresetsOutput{
		Body: *mappers.ToPresetsResponse(presets.List()),
	}, nil
}
