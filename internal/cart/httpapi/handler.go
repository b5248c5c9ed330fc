// Package httpapi serves the cart endpoints. Every page surface talks to the
// same service instance, so listing, detail, and cart views observe one state.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	cartapp "github.com/Aritro-Git/AIzMarketplace/internal/cart/app"
	catalogapp "github.com/Aritro-Git/AIzMarketplace/internal/catalog/app"
	"github.com/Aritro-Git/AIzMarketplace/internal/telemetry"
	"github.com/Aritro-Git/AIzMarketplace/pkg/money"
)

type Handler struct {
	cart     *cartapp.Service
	catalog  *catalogapp.Service
	metrics  *telemetry.Metrics
	currency string
}

func NewHandler(cart *cartapp.Service, catalog *catalogapp.Service, metrics *telemetry.Metrics, currency string) *Handler {
	if currency == "" {
		currency = money.DefaultPrefix
	}
	return &Handler{cart: cart, catalog: catalog, metrics: metrics, currency: currency}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/cart", h.get)
	r.POST("/cart/items", h.add)
	r.POST("/cart/items/:sku/increment", h.increment)
	r.POST("/cart/items/:sku/decrement", h.decrement)
	r.DELETE("/cart/items/:sku", h.remove)
}

type addInput struct {
	SKU string `json:"sku" binding:"required"`
}

type linePayload struct {
	SKU       string `json:"sku"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Qty       int    `json:"qty"`
	LineTotal string `json:"line_total"`
}

// GET /api/cart
func (h *Handler) get(c *gin.Context) {
	c.JSON(http.StatusOK, h.payload())
}

// POST /api/cart/items
func (h *Handler) add(c *gin.Context) {
	var input addInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	agent, err := h.catalog.Get(c.Request.Context(), input.SKU)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "agent does not exist"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sku"})
		return
	}

	err = h.cart.Add(c.Request.Context(), agent.ID, agent.Name, money.Parse(agent.PriceMonth), agent.Visual)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist cart"})
		return
	}
	h.metrics.ObserveCartOp("add", h.cart.Units())
	c.JSON(http.StatusCreated, h.payload())
}

// POST /api/cart/items/:sku/increment
func (h *Handler) increment(c *gin.Context) {
	h.mutate(c, "increment", h.cart.Increment)
}

// POST /api/cart/items/:sku/decrement
func (h *Handler) decrement(c *gin.Context) {
	h.mutate(c, "decrement", h.cart.Decrement)
}

// DELETE /api/cart/items/:sku
func (h *Handler) remove(c *gin.Context) {
	h.mutate(c, "remove", h.cart.Remove)
}

func (h *Handler) mutate(c *gin.Context, op string, fn func(ctx context.Context, sku string) error) {
	if err := fn(c.Request.Context(), c.Param("sku")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist cart"})
		return
	}
	h.metrics.ObserveCartOp(op, h.cart.Units())
	c.JSON(http.StatusOK, h.payload())
}

func (h *Handler) payload() gin.H {
	items := h.cart.Items()
	totals := h.cart.Totals()

	lines := make([]linePayload, 0, len(items))
	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Qty))
		lines = append(lines, linePayload{
			SKU:       it.SKU,
			Title:     it.Title,
			Price:     money.FormatWith(h.currency, it.Price),
			Image:     it.Image,
			Qty:       it.Qty,
			LineTotal: money.FormatWith(h.currency, it.Price.Mul(qty)),
		})
	}

	return gin.H{
		"items":    lines,
		"count":    h.cart.Units(),
		"subtotal": money.FormatWith(h.currency, totals.Subtotal),
		"tax":      money.FormatWith(h.currency, totals.Tax),
		"total":    money.FormatWith(h.currency, totals.Total),
	}
}
