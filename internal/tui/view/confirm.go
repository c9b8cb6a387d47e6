package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pizzarten/pizzarten/internal/dialog"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// ConfirmView renders a modal confirmation dialog. The guarded operation
// runs only after the user accepts; cancelling leaves everything untouched.
type ConfirmView struct{}

// NewConfirmView creates a new ConfirmView instance.
func NewConfirmView() *ConfirmView {
	return &ConfirmView{}
}

// Render renders the confirmation modal.
func (v *ConfirmView) Render(c dialog.Confirm) string {
	var b strings.Builder

	icon := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.KindColor(string(c.Kind))).
		Render(styles.KindIcon(string(c.Kind)))

	b.WriteString(icon)
	b.WriteString(" ")
	b.WriteString(styles.ModalTitle.Render(c.Title))
	b.WriteString("\n")
	if c.Text != "" {
		b.WriteString(styles.ModalText.Render(c.Text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	accept := c.AcceptLabel
	if accept == "" {
		accept = "OK"
	}
	b.WriteString(styles.ActionPrimary.Render(accept + " [enter]"))

	if c.CancelLabel != "" {
		b.WriteString("  ")
		b.WriteString(styles.ActionSecondary.Render(c.CancelLabel + " [esc]"))
	}

	return styles.Modal.Render(b.String())
}
