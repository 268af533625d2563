package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"pakgov-intel/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
		},
		{
			name:           "ConfigurationError returns 503",
			input:          &errors.ConfigurationError{Setting: "API_KEY", Message: "API Key is missing."},
			expectedStatus: 503,
			expectedInMsg:  "Report service is not configured",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "topic", Message: "topic is required"},
			expectedStatus: 400,
			expectedInMsg:  "topic is required",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "view", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "view not found",
		},
		{
			name:           "upstream transport failure returns 502",
			input:          &errors.UpstreamError{Op: "generateContent", Err: fmt.Errorf("connection reset")},
			expectedStatus: 502,
			expectedInMsg:  "Upstream model service error",
		},
		{
			name: "upstream quota returns 429",
			input: &errors.UpstreamError{Op: "generateContent", Err: &errors.ExternalAPIError{
				StatusCode: 429, Message: "quota exceeded", API: "gemini",
			}},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited",
		},
		{
			name: "upstream server error returns 502",
			input: &errors.UpstreamError{Op: "generateContent", Err: &errors.ExternalAPIError{
				StatusCode: 500, Message: "internal", API: "gemini",
			}},
			expectedStatus: 502,
			expectedInMsg:  "Upstream model service error",
		},
		{
			name: "upstream bad request returns 502",
			input: &errors.UpstreamError{Op: "generateContent", Err: &errors.ExternalAPIError{
				StatusCode: 400, Message: "API key not valid", API: "gemini",
			}},
			expectedStatus: 502,
			expectedInMsg:  "Upstream model service error",
		},
		{
			name:           "bare ExternalAPIError returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 503, Message: "unavailable"},
			expectedStatus: 502,
			expectedInMsg:  "Upstream model service error",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("context: %w", &errors.ValidationError{Field: "preset", Message: "unknown preset"}),
			expectedStatus: 400,
			expectedInMsg:  "unknown preset",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusFor(nil))
	assert.Equal(t, http.StatusServiceUnavailable, StatusFor(&errors.ConfigurationError{Setting: "API_KEY"}))
	assert.Equal(t, http.StatusBadGateway, StatusFor(&errors.UpstreamError{Op: "generateContent"}))
}
