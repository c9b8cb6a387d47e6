package view

import (
	"strings"

	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// ProductFormState holds the rendered inputs for the admin product form.
// The textinput models themselves live in the TUI model; the view only
// lays out their rendered output.
type ProductFormState struct {
	// NameInput is the rendered name field.
	NameInput string
	// PriceInput is the rendered price field.
	PriceInput string
}

// ProductFormView renders the admin "new pizza" modal form.
type ProductFormView struct{}

// NewProductFormView creates a new ProductFormView instance.
func NewProductFormView() *ProductFormView {
	return &ProductFormView{}
}

// Render renders the product form modal.
func (v *ProductFormView) Render(s ProductFormState) string {
	var b strings.Builder

	b.WriteString(styles.ModalTitle.Render("Nueva Pizza"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Nombre"))
	b.WriteString("\n")
	b.WriteString(s.NameInput)
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Precio (ej. 12.99)"))
	b.WriteString("\n")
	b.WriteString(s.PriceInput)
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("[tab]"))
	b.WriteString(styles.Muted.Render(" cambiar campo  "))
	b.WriteString(styles.HelpKey.Render("[enter]"))
	b.WriteString(styles.Muted.Render(" crear  "))
	b.WriteString(styles.HelpKey.Render("[esc]"))
	b.WriteString(styles.Muted.Render(" cancelar"))

	return styles.Modal.Render(b.String())
}
