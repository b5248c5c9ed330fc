// Package jsonfile loads the agents dataset from a JSON file on disk, the
// same shape the listing pages fetch.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/domain"
)

type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

// agentRecord is the wire shape. price_month arrives as either a string or a
// number depending on who edited the dataset last, so it decodes through
// flexString.
type agentRecord struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Tagline      string     `json:"tagline"`
	Bullets      []string   `json:"bullets"`
	Integrations []string   `json:"integrations"`
	PriceMonth   flexString `json:"price_month"`
	Rating       float64    `json:"rating"`
	Reviews      int        `json:"reviews"`
	Deployment   string     `json:"deployment"`
	Badges       []string   `json:"badges"`
	Visual       string     `json:"visual"`
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		*f = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (s *Source) Load(ctx context.Context) ([]domain.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", s.path, err)
	}

	var records []agentRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode catalogue %s: %w", s.path, err)
	}

	agents := make([]domain.Agent, 0, len(records))
	for _, r := range records {
		agents = append(agents, domain.Agent{
			ID:           r.ID,
			Name:         r.Name,
			Category:     r.Category,
			Tagline:      r.Tagline,
			Bullets:      r.Bullets,
			Integrations: r.Integrations,
			PriceMonth:   string(r.PriceMonth),
			Rating:       clampRating(r.Rating),
			Reviews:      max(r.Reviews, 0),
			Deployment:   r.Deployment,
			Badges:       r.Badges,
			Visual:       r.Visual,
		})
	}
	return agents, nil
}

func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
