// ABOUTME: View domain model for the dashboard's current result
// ABOUTME: A view is replaced by every successful scan and dropped on reset

package domain

import "time"

// View is what a dashboard client currently looks at
type View struct {
	Topic     string       `json:"topic"`
	Result    SearchResult `json:"result"`
	CreatedAt time.Time    `json:"createdAt"`
}
