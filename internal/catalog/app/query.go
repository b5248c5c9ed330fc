package app

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/domain"
)

type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
)

// ParseSortKey normalises a raw sort value. Unknown values fall back to the
// popularity default so a stale query string can never break the listing.
func ParseSortKey(v string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(v))) {
	case SortRating:
		return SortRating
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	default:
		return SortPopular
	}
}

const (
	FilterBadge      = "badge"
	FilterDeployment = "deployment"
)

// Filter is one active quick-filter pill: a (dimension, value) pair.
type Filter struct {
	Dimension string
	Value     string
}

// QueryState is the transient listing-page state. The zero value means
// "everything, popularity order".
type QueryState struct {
	Search   string
	Category string
	Sort     SortKey
	Filters  []Filter
}

// Result is an ordered, filtered view over the catalogue plus the counts the
// "Showing K of N" meta line needs.
type Result struct {
	Agents []domain.Agent
	Shown  int
	Total  int
}

// Query filters and orders the catalogue for one QueryState. It is pure: the
// input slice is never mutated and the same state always yields the same
// ordered result.
func Query(catalog []domain.Agent, state QueryState) Result {
	filtered := make([]domain.Agent, 0, len(catalog))
	for _, a := range catalog {
		if matchesCategory(a, state.Category) && matchesSearch(a, state.Search) && matchesFilters(a, state.Filters) {
			filtered = append(filtered, a)
		}
	}

	sortAgents(filtered, state.Sort)

	return Result{
		Agents: filtered,
		Shown:  len(filtered),
		Total:  len(catalog),
	}
}

func matchesCategory(a domain.Agent, category string) bool {
	switch category {
	case "", domain.CategoryAll:
		return true
	case domain.CategoryMore:
		return !a.InFixedCategory()
	default:
		return a.Category == category
	}
}

func matchesSearch(a domain.Agent, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	parts := make([]string, 0, 3+len(a.Bullets)+len(a.Integrations))
	parts = append(parts, a.Name, a.Category, a.Tagline)
	parts = append(parts, a.Bullets...)
	parts = append(parts, a.Integrations...)

	hay := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(hay, q)
}

func matchesFilters(a domain.Agent, filters []Filter) bool {
	for _, f := range filters {
		switch f.Dimension {
		case FilterBadge:
			if !a.HasBadge(f.Value) {
				return false
			}
		case FilterDeployment:
			if !strings.EqualFold(a.Deployment, f.Value) {
				return false
			}
		}
	}
	return true
}

func sortAgents(agents []domain.Agent, key SortKey) {
	switch key {
	case SortRating:
		sort.SliceStable(agents, func(i, j int) bool {
			return agents[i].Rating > agents[j].Rating
		})
	case SortPriceLow:
		sort.SliceStable(agents, func(i, j int) bool {
			return monthlyPrice(agents[i]).LessThan(monthlyPrice(agents[j]))
		})
	case SortPriceHigh:
		sort.SliceStable(agents, func(i, j int) bool {
			return monthlyPrice(agents[j]).LessThan(monthlyPrice(agents[i]))
		})
	default:
		sort.SliceStable(agents, func(i, j int) bool {
			return agents[i].Reviews > agents[j].Reviews
		})
	}
}

// monthlyPrice parses the raw price for ordering. Missing or malformed
// values sort as zero.
func monthlyPrice(a domain.Agent) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(a.PriceMonth))
	if err != nil {
		return decimal.Zero
	}
	return d
}
