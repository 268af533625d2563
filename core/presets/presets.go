// ABOUTME: Canned dashboard topics covering the main policy sectors
// ABOUTME: A preset scan sends the preset's query rather than its label

package presets

import "pakgov-intel/core/domain"

var defaults = []domain.Preset{
	{ID: "economy", Label: "Economy & IMF", Query: "Economy IMF State Bank Pakistan"},
	{ID: "it", Label: "IT & Digital", Query: "IT Exports Digital Pakistan Policy"},
	{ID: "energy", Label: "Energy Crisis", Query: "Energy Power Sector Circular Debt Pakistan"},
	{ID: "agri", Label: "Agriculture", Query: "Agriculture Wheat Sugar Crops Pakistan Government"},
	{ID: "security", Label: "National Security", Query: "National Security Defense Pakistan"},
	{ID: "infra", Label: "Infrastructure", Query: "Infrastructure Development PSDP CPEC"},
}

// List returns the presets in display order
func List() []domain.Preset {
	out := make([]domain.Preset, len(defaults))
	copy(out, defaults)
	return out
}

// Find returns the preset with the given id
func Find(id string) (domain.Preset, bool) {
	for _, p := range defaults {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Preset{}, false
}
