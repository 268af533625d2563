package domain

// Preset is a canned topic offered on the dashboard.
// Scanning a preset sends Query; Label is only displayed.
type Preset struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Query string `json:"query"`
}
