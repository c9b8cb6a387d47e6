package view

import (
	"strings"
	"testing"

	"github.com/pizzarten/pizzarten/internal/cart"
)

func TestCartRenderEmpty(t *testing.T) {
	v := NewCartView()
	out := v.Render(CartState{Width: 80, Selected: -1})

	if !strings.Contains(out, "Tu carrito está vacío") {
		t.Error("empty cart should render the empty message")
	}
	if !strings.Contains(out, "Ir al Menú") {
		t.Error("empty cart should offer the way back to the menu")
	}
	// The original storefront showed zeroed totals on the empty cart.
	if !strings.Contains(out, "$0.00") {
		t.Error("empty cart should render $0.00 totals")
	}
	if strings.Contains(out, "Finalizar Pedido") {
		t.Error("empty cart should not offer checkout")
	}
}

func TestCartRenderLinesAndTotals(t *testing.T) {
	v := NewCartView()
	lines := []cart.Line{
		{ID: 1, Name: "La Da Vinci", Price: 14.99, Qty: 2},
		{ID: 2, Name: "Picasso Picante", Price: 13.50, Qty: 1},
	}
	out := v.Render(CartState{
		Lines:    lines,
		Totals:   cart.Totals{Subtotal: 43.48, Shipping: 2.00, Total: 45.48},
		Selected: 0,
		Width:    100,
	})

	for _, want := range []string{
		"La Da Vinci",
		"Picasso Picante",
		"$29.98", // 2 × 14.99 line total
		"Subtotal",
		"$43.48",
		"Envío",
		"$2.00",
		"$45.48",
		"Finalizar Pedido [enter]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}
