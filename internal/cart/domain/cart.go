package domain

import "github.com/shopspring/decimal"

// LineItem is one cart entry. Title, price, and image are snapshots taken at
// add-time and do not track later catalogue changes.
type LineItem struct {
	SKU   string
	Title string
	Price decimal.Decimal
	Image string
	Qty   int
}

// Cart is an ordered sequence of line items, unique by SKU. All invariant
// handling lives on these methods so every mutation path shares it.
type Cart struct {
	Items []LineItem
}

// Add upserts a line for sku. An existing line gains one unit and keeps its
// original snapshots; a new line is appended with quantity 1, preserving
// insertion order.
func (c *Cart) Add(sku, title string, price decimal.Decimal, image string) {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			c.Items[i].Qty++
			return
		}
	}
	c.Items = append(c.Items, LineItem{
		SKU:   sku,
		Title: title,
		Price: price,
		Image: image,
		Qty:   1,
	})
}

// Increment adds one unit to the matching line. Unknown skus are a no-op.
func (c *Cart) Increment(sku string) {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			c.Items[i].Qty++
			return
		}
	}
}

// Decrement removes one unit but clamps at 1; only Remove drops a line.
// Unknown skus are a no-op.
func (c *Cart) Decrement(sku string) {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			if c.Items[i].Qty > 1 {
				c.Items[i].Qty--
			}
			return
		}
	}
}

// Remove deletes the line regardless of quantity. Unknown skus are a no-op.
func (c *Cart) Remove(sku string) {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Units is the total item count across lines, the number the cart badge shows.
func (c *Cart) Units() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

// Subtotal is the exact sum of price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return sum
}
