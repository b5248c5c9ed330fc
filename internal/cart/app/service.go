package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/Aritro-Git/AIzMarketplace/internal/analytics"
	"github.com/Aritro-Git/AIzMarketplace/internal/cart/domain"
)

// lineRecord is the persisted shape of one line item.
type lineRecord struct {
	SKU   string          `json:"sku"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Qty   int             `json:"qty"`
}

// Totals is the checkout summary recomputed from current state on every call.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Service owns the process-wide cart. It is built once and passed by
// reference to every consumer; all mutations run through mutate so the
// unique-sku invariant and the write-through both happen in one place.
type Service struct {
	storage Storage
	emitter analytics.Emitter
	log     *slog.Logger
	taxRate decimal.Decimal
	cart    domain.Cart
}

type Options struct {
	// TaxRate multiplies the subtotal. The live policy is zero; the knob
	// exists so a real rate is a config change, not a code change.
	TaxRate decimal.Decimal
	Emitter analytics.Emitter
	Logger  *slog.Logger
}

func NewService(storage Storage, opts Options) *Service {
	if opts.Emitter == nil {
		opts.Emitter = analytics.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		storage: storage,
		emitter: opts.Emitter,
		log:     opts.Logger,
		taxRate: opts.TaxRate,
	}
}

// Load restores the cart from storage. A missing, corrupt, or unparseable
// blob is treated as "no cart": the error is swallowed after a debug log and
// the service starts empty.
func (s *Service) Load(ctx context.Context) {
	blob, err := s.storage.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Debug("cart read failed, starting empty", slog.Any("err", err))
		}
		s.cart = domain.Cart{}
		return
	}

	var records []lineRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		s.log.Debug("cart blob unparseable, starting empty", slog.Any("err", err))
		s.cart = domain.Cart{}
		return
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, r := range records {
		if r.SKU == "" || r.Qty < 1 {
			continue
		}
		items = append(items, domain.LineItem{
			SKU:   r.SKU,
			Title: r.Title,
			Price: r.Price,
			Image: r.Image,
			Qty:   r.Qty,
		})
	}
	s.cart = domain.Cart{Items: items}
}

// mutate applies fn to the in-memory cart then writes the full state through.
func (s *Service) mutate(ctx context.Context, fn func(*domain.Cart)) error {
	fn(&s.cart)
	return s.commit(ctx)
}

func (s *Service) commit(ctx context.Context) error {
	records := make([]lineRecord, 0, len(s.cart.Items))
	for _, it := range s.cart.Items {
		records = append(records, lineRecord{
			SKU:   it.SKU,
			Title: it.Title,
			Price: it.Price,
			Image: it.Image,
			Qty:   it.Qty,
		})
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.storage.Write(ctx, blob)
}

func (s *Service) Add(ctx context.Context, sku, title string, price decimal.Decimal, image string) error {
	err := s.mutate(ctx, func(c *domain.Cart) {
		c.Add(sku, title, price, image)
	})
	if err == nil {
		s.emitter.Emit(ctx, analytics.New("add_to_cart", map[string]any{"agent_id": sku}))
	}
	return err
}

func (s *Service) Increment(ctx context.Context, sku string) error {
	return s.mutate(ctx, func(c *domain.Cart) { c.Increment(sku) })
}

func (s *Service) Decrement(ctx context.Context, sku string) error {
	return s.mutate(ctx, func(c *domain.Cart) { c.Decrement(sku) })
}

func (s *Service) Remove(ctx context.Context, sku string) error {
	return s.mutate(ctx, func(c *domain.Cart) { c.Remove(sku) })
}

// Items returns a copy of the current lines in insertion order.
func (s *Service) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(s.cart.Items))
	copy(out, s.cart.Items)
	return out
}

// Units is the badge count: the sum of quantities across lines.
func (s *Service) Units() int {
	return s.cart.Units()
}

// Totals recomputes the summary from current state. Nothing is cached.
func (s *Service) Totals() Totals {
	subtotal := s.cart.Subtotal()
	tax := subtotal.Mul(s.taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
