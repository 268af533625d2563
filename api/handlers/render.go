// ABOUTME: Markdown render handler for the Huma API
// ABOUTME: Exposes the line-oriented renderer so clients can render stored reports

package handlers

import (
	"context"
	"net/http"

	"pakgov-intel/api/dto/requests"
	"pakgov-intel/api/dto/responses"
	"pakgov-intel/core/markdown"
	"pakgov-intel/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// RenderHandler handles markdown render requests
type RenderHandler struct {
	flags featureflags.Manager
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(flags featureflags.Manager) *RenderHandler {
	return &RenderHandler{flags: flags}
}

// RegisterRoutes registers the render route
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderMarkdown",
		Method:      http.MethodPost,
		Path:        "/api/v1/render",
		Summary:     "Render report markdown into blocks",
		Tags:        []string{"Reports"},
	}, h.Render)
}

// RenderInput defines the input for the Render operation
type RenderInput struct {
	Body requests.RenderRequest
}

// RenderOutput defines the output for the Render operation
type RenderOutput struct {
	Body responses.RenderResponse
}

// Render handles the POST /api/v1/render endpoint
func (h *RenderHandler) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.RenderAPIEnabled) {
		return nil, huma.Error404NotFound("Render API is disabled")
	}

	return &RenderOutput{
		Body: responses.RenderResponse{
			Blocks: markdown.Render(input.Body.Content),
		},
	}, nil
}
