// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache backs the per-client view store
	Cache Cache

	// HTTPClient performs the outbound model request
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
