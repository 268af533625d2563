// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"net/http"

	"pakgov-intel/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsConfiguration(err) {
		return huma.Error503ServiceUnavailable("Report service is not configured", err)
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsUpstream(err) || errors.IsExternalAPI(err) {
		if apiErr, ok := errors.AsExternalAPI(err); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			return huma.Error429TooManyRequests("Rate limited by upstream model service", err)
		}
		return huma.Error502BadGateway("Upstream model service error", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// StatusFor returns the HTTP status code toHumaError would produce
func StatusFor(err error) int {
	if se, ok := toHumaError(err).(huma.StatusError); ok {
		return se.GetStatus()
	}
	return http.StatusOK
}
