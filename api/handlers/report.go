// ABOUTME: Report handlers for the Huma API
// ABOUTME: Provides the endpoint that turns a topic into a grounded briefing

package handlers

import (
	"context"
	"net/http"

	"pakgov-intel/api/dto/mappers"
	"pakgov-intel/api/dto/requests"
	"pakgov-intel/api/dto/responses"
	"pakgov-intel/core/errors"
	"pakgov-intel/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ReportHandler handles report-related HTTP requests
type ReportHandler struct {
	reports interfaces.ReportRequester
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports interfaces.ReportRequester) *ReportHandler {
	return &ReportHandler{
		reports: reports,
	}
}

// RegisterRoutes registers all report-related routes
func (h *ReportHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createReport",
		Method:      http.MethodPost,
		Path:        "/api/v1/reports",
		Summary:     "Generate a policy briefing",
		Description: "Runs one grounded model request for the topic or preset and returns the briefing with its deduplicated sources",
		Tags:        []string{"Reports"},
	}, h.CreateReport)
}

// CreateReportInput defines the input for the CreateReport operation
type CreateReportInput struct {
	Body requests.ReportRequest
}

// CreateReportOutput defines the output for the CreateReport operation
type CreateReportOutput struct {
	Body responses.ReportResponse
}

// CreateReport handles the POST /api/v1/reports endpoint
func (h *ReportHandler) CreateReport(ctx context.Context, input *CreateReportInput) (*CreateReportOutput, error) {
	topic, ok := input.Body.ResolveTopic()
	if !ok {
		return nil, toHumaError(&errors.ValidationError{Field: "preset", Message: "unknown preset"})
	}

	result, err := h.reports.RequestReport(ctx, topic)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateReportOutput{
		Body: *mappers.ToReportResponse(topic, result),
	}, nil
}
