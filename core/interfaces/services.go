// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for report generation, markdown rendering and view state

package interfaces

import (
	"context"

	"pakgov-intel/core/domain"
)

// ReportRequester produces a report for a free-text topic
type ReportRequester interface {
	RequestReport(ctx context.Context, topic string) (*domain.SearchResult, error)
}

// ViewStore holds the current dashboard view for each client
type ViewStore interface {
	// Current returns the view for id, or a NotFoundError
	Current(ctx context.Context, id string) (*domain.View, error)

	// Replace overwrites the view for id
	Replace(ctx context.Context, id string, view *domain.View) error

	// Reset discards the view for id
	Reset(ctx context.Context, id string) error
}
