package domain

import "strings"

// Agent is one marketplace listing. Records are immutable for the lifetime
// of the process once the catalogue source has resolved.
type Agent struct {
	ID           string
	Name         string
	Category     string
	Tagline      string
	Bullets      []string
	Integrations []string
	// PriceMonth is kept as sourced. Malformed values are tolerated: they
	// sort as zero and render verbatim behind the currency prefix.
	PriceMonth string
	Rating     float64
	Reviews    int
	Deployment string
	Badges     []string
	Visual     string
}

const (
	CategoryAll  = "All"
	CategoryMore = "More"
)

// FixedCategories are the named tabs. Anything outside this set falls into
// the More bucket.
var FixedCategories = []string{"Marketing", "Coding", "Business", "Data", "Ops", "Personal"}

// InFixedCategory reports whether the agent's category is one of the named tabs.
func (a Agent) InFixedCategory() bool {
	for _, c := range FixedCategories {
		if a.Category == c {
			return true
		}
	}
	return false
}

// HasBadge reports case-insensitive membership in the badge set.
func (a Agent) HasBadge(badge string) bool {
	for _, b := range a.Badges {
		if strings.EqualFold(b, badge) {
			return true
		}
	}
	return false
}
