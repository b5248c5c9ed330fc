// Package httpapi serves the catalogue listing and detail endpoints.
package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/app"
	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/domain"
	"github.com/Aritro-Git/AIzMarketplace/internal/telemetry"
	"github.com/Aritro-Git/AIzMarketplace/pkg/money"
)

type Handler struct {
	svc      *app.Service
	metrics  *telemetry.Metrics
	currency string
}

func NewHandler(svc *app.Service, metrics *telemetry.Metrics, currency string) *Handler {
	if currency == "" {
		currency = money.DefaultPrefix
	}
	return &Handler{svc: svc, metrics: metrics, currency: currency}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/agents", h.list)
	r.GET("/agents/:id", h.get)
}

type agentPayload struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Tagline      string   `json:"tagline"`
	Bullets      []string `json:"bullets,omitempty"`
	Integrations []string `json:"integrations,omitempty"`
	PriceMonth   string   `json:"price_month"`
	PriceDisplay string   `json:"price_display"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Deployment   string   `json:"deployment"`
	Badges       []string `json:"badges,omitempty"`
	Visual       string   `json:"visual"`
}

// GET /api/agents?q=&category=&sort=&filter=badge:Prime+AI&filter=deployment:cloud
func (h *Handler) list(c *gin.Context) {
	state := app.QueryState{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     app.ParseSortKey(c.Query("sort")),
		Filters:  parseFilters(c.QueryArray("filter")),
	}

	res := h.svc.Query(c.Request.Context(), state)
	h.metrics.ObserveQuery(state.Category, string(state.Sort))

	results := make([]agentPayload, 0, len(res.Agents))
	for _, a := range res.Agents {
		results = append(results, h.payload(a))
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"shown":   res.Shown,
		"total":   res.Total,
	})
}

// GET /api/agents/:id
func (h *Handler) get(c *gin.Context) {
	agent, err := h.svc.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent does not exist"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}
	c.JSON(http.StatusOK, h.payload(agent))
}

func (h *Handler) payload(a domain.Agent) agentPayload {
	return agentPayload{
		ID:           a.ID,
		Name:         a.Name,
		Category:     a.Category,
		Tagline:      a.Tagline,
		Bullets:      a.Bullets,
		Integrations: a.Integrations,
		PriceMonth:   a.PriceMonth,
		PriceDisplay: money.FormatRawWith(h.currency, a.PriceMonth),
		Rating:       a.Rating,
		Reviews:      a.Reviews,
		Deployment:   a.Deployment,
		Badges:       a.Badges,
		Visual:       a.Visual,
	}
}

// parseFilters decodes repeated filter=dimension:value params. The value may
// itself contain colons, so only the first one splits.
func parseFilters(raw []string) []app.Filter {
	filters := make([]app.Filter, 0, len(raw))
	for _, r := range raw {
		dim, val, ok := strings.Cut(r, ":")
		if !ok || dim == "" || val == "" {
			continue
		}
		filters = append(filters, app.Filter{Dimension: strings.ToLower(dim), Value: val})
	}
	return filters
}
