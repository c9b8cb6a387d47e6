package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pizzarten/pizzarten/internal/cart"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// CartState holds the state needed to render the cart page.
type CartState struct {
	// Lines are the cart lines in first-add order.
	Lines []cart.Line
	// Totals are the derived order amounts.
	Totals cart.Totals
	// Selected is the index of the highlighted line. Negative means none.
	Selected int
	// Width is the available width.
	Width int
}

// CartView renders the cart page: line items with quantity controls,
// computed totals, and the checkout action.
type CartView struct{}

// NewCartView creates a new CartView instance.
func NewCartView() *CartView {
	return &CartView{}
}

// Render renders the cart page for the given state.
func (v *CartView) Render(s CartState) string {
	if len(s.Lines) == 0 {
		var b strings.Builder
		b.WriteString(styles.EmptyState.Render("Tu carrito está vacío ☹️"))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("Ir al Menú "))
		b.WriteString(styles.HelpKey.Render("[h]"))
		b.WriteString("\n\n")
		b.WriteString(v.renderTotals(cart.Totals{Shipping: cart.Shipping, Total: 0}))
		return b.String()
	}

	var b strings.Builder
	for i, line := range s.Lines {
		b.WriteString(v.renderLine(line, i == s.Selected, s.Width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderTotals(s.Totals))
	b.WriteString("\n")
	b.WriteString(styles.ActionPrimary.Render("Finalizar Pedido [enter]"))

	return b.String()
}

func (v *CartView) renderLine(line cart.Line, selected bool, width int) string {
	name := styles.CardTitle.Render(line.Name)
	unit := styles.Muted.Render(cart.FormatPrice(line.Price))

	qty := styles.HelpKey.Render("[-]") +
		styles.CartQty.Render(fmt.Sprintf("%d", line.Qty)) +
		styles.HelpKey.Render("[+]")

	lineTotal := styles.CardPrice.Render(cart.FormatPrice(line.Price * float64(line.Qty)))
	remove := styles.Danger.Render("[x]")

	left := name + " " + unit
	right := qty + "  " + lineTotal + "  " + remove

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	row := left + strings.Repeat(" ", gap) + right
	if selected {
		return styles.CartRowSelected.Render(row)
	}
	return row
}

// renderTotals shows subtotal, the fixed shipping surcharge, and the
// final total, each formatted to two decimals. For an empty cart the
// original storefront showed $0.00 for both subtotal and total.
func (v *CartView) renderTotals(t cart.Totals) string {
	var b strings.Builder

	if t.Subtotal == 0 && t.Total == 0 {
		b.WriteString(styles.TotalsLabel.Render("Subtotal: "))
		b.WriteString(styles.TotalsValue.Render("$0.00"))
		b.WriteString("\n")
		b.WriteString(styles.TotalsLabel.Render("Total:    "))
		b.WriteString(styles.TotalsValue.Render("$0.00"))
		return b.String()
	}

	b.WriteString(styles.TotalsLabel.Render("Subtotal: "))
	b.WriteString(styles.TotalsValue.Render(cart.FormatPrice(t.Subtotal)))
	b.WriteString("\n")
	b.WriteString(styles.TotalsLabel.Render("Envío:    "))
	b.WriteString(styles.TotalsValue.Render(cart.FormatPrice(t.Shipping)))
	b.WriteString("\n")
	b.WriteString(styles.TotalsLabel.Render("Total:    "))
	b.WriteString(styles.TotalsValue.Render(cart.FormatPrice(t.Total)))
	return b.String()
}
