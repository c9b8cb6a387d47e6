package view

import (
	"strings"

	"github.com/pizzarten/pizzarten/internal/cart"
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// DetailState holds the state needed to render the detail page.
type DetailState struct {
	// Item is the resolved catalog item. Nil renders the not-found message,
	// covering dangling deep links and items deleted underneath the view.
	Item *catalog.Item
	// Role drives the add-to-cart versus login-prompt action.
	Role session.Role
	// ShowImageRefs displays the image reference path.
	ShowImageRefs bool
	// Width is the available width.
	Width int
}

// DetailView renders a single product or bundle.
type DetailView struct{}

// NewDetailView creates a new DetailView instance.
func NewDetailView() *DetailView {
	return &DetailView{}
}

// Render renders the detail page for the given state.
func (v *DetailView) Render(s DetailState) string {
	if s.Item == nil {
		var b strings.Builder
		b.WriteString(styles.ModalTitle.Render("Producto no encontrado"))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("Volver al inicio "))
		b.WriteString(styles.HelpKey.Render("[h]"))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder

	if s.Item.Badge != "" {
		b.WriteString(styles.ComboBadge.Render(s.Item.Badge))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.HeroTitle.Render(s.Item.Name))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(s.Item.Desc))
	b.WriteString("\n")
	if s.ShowImageRefs && s.Item.Img != "" {
		b.WriteString(styles.Muted.Render(s.Item.Img))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.CardPrice.Render(cart.FormatPrice(s.Item.Price)))
	b.WriteString("\n\n")
	b.WriteString(v.renderAction(s))

	return b.String()
}

// renderAction re-derives the role-gated action on every render.
func (v *DetailView) renderAction(s DetailState) string {
	if s.Role == session.RoleVisitor {
		return styles.ActionSecondary.Render("Inicia Sesión para Pedir [a]")
	}
	return styles.ActionPrimary.Render("Añadir al Pedido [a]")
}
