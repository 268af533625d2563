// Package api provides the HTTP API layer for PakGov Intel.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers (reports, render, presets)
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request/Response Validation
//
// Huma validates bodies based on struct tags:
//
//	type ReportRequest struct {
//	    Topic  string `json:"topic,omitempty" maxLength:"500"`
//	    Preset string `json:"preset,omitempty"`
//	}
//
// 3. Middleware Support
//
// - Request logging with unique request IDs
// - Rate limiting per client IP, switchable by feature flag
// - CORS handling
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewReportHandler(reportService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "Report service is not configured"
//	}
//
// Domain errors are mapped to status codes: validation 400, not found 404,
// configuration 503, upstream quota 429, other upstream failures 502.
package api
