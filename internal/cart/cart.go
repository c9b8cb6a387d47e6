// Package cart holds the in-memory shopping cart: an ordered list of
// line items keyed by the referenced catalog id, persisted as a JSON
// array after every mutation.
package cart

import (
	"encoding/json"
	"fmt"

	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/store"
)

// Shipping is the fixed surcharge added to every order total.
const Shipping = 2.00

// Line is one cart entry. Name, price and image are snapshots taken when
// the item was first added: later catalog edits never change them.
type Line struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
	Qty   int     `json:"qty"`
}

// Cart is an ordered sequence of lines, insertion order = first-add order.
// At most one line exists per referenced id.
type Cart struct {
	lines []Line
}

// Load reads the cart from the durable store, defaulting to an empty cart
// if the key is absent or the data is malformed.
func Load(s store.Store) *Cart {
	data, err := s.Get(store.CartKey)
	if err != nil {
		return &Cart{}
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return &Cart{}
	}
	return &Cart{lines: lines}
}

// Encode serializes the cart for persistence. An empty cart encodes to an
// empty JSON array, not null.
func (c *Cart) Encode() ([]byte, error) {
	if c.lines == nil {
		return json.Marshal([]Line{})
	}
	return json.Marshal(c.lines)
}

// Add records one unit of the given catalog item. If a line for the id
// already exists its quantity is incremented, otherwise a new line is
// appended with a snapshot of the item's name, price and image.
func (c *Cart) Add(item *catalog.Item) *Line {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Qty++
			return &c.lines[i]
		}
	}

	c.lines = append(c.lines, Line{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Img:   item.Img,
		Qty:   1,
	})
	return &c.lines[len(c.lines)-1]
}

// UpdateQty adds delta to the quantity of the line with the given id.
// A resulting quantity of zero or below removes the line. Unknown ids
// are a no-op. The return reports whether the cart changed.
func (c *Cart) UpdateQty(id int64, delta int) bool {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Qty += delta
			if c.lines[i].Qty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return true
		}
	}
	return false
}

// Remove filters out the line with the given id. Absent ids are a no-op.
func (c *Cart) Remove(id int64) bool {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns the cart lines in first-add order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Count returns the total quantity across all lines (the navbar badge).
func (c *Cart) Count() int {
	total := 0
	for _, l := range c.lines {
		total += l.Qty
	}
	return total
}

// Totals holds the derived order amounts.
type Totals struct {
	Subtotal float64
	Shipping float64
	Total    float64
}

// ComputeTotals derives the order amounts: subtotal = Σ price×qty, total =
// subtotal + the fixed shipping surcharge.
func (c *Cart) ComputeTotals() Totals {
	subtotal := 0.0
	for _, l := range c.lines {
		subtotal += l.Price * float64(l.Qty)
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: Shipping,
		Total:    subtotal + Shipping,
	}
}

// FormatPrice renders an amount with two decimal places and a currency sign.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
