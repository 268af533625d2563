// Package core contains the business logic for PakGov Intel.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SearchResult, SourceItem, View, Preset)
// - report: Builds the grounded model request and normalizes its answer;
//   Batch fans several topics out with a concurrency limit
// - markdown: Line-oriented renderer turning report text into blocks
// - view: Per-client current view held in the cache
// - presets: The canned dashboard topics
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "pakgov-intel/core/interfaces"
//	    "pakgov-intel/core/report"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := report.NewReportService(report.Config{APIKey: key}, deps)
//	result, err := svc.RequestReport(ctx, "IMF programme review")
//	if err != nil {
//	    // ConfigurationError, ValidationError or UpstreamError
//	}
//	fmt.Println(result.MarkdownReport, len(result.Sources))
package core
