package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pizzarten/pizzarten/internal/dialog"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// ToastView renders a transient notification in the top-right corner.
type ToastView struct{}

// NewToastView creates a new ToastView instance.
func NewToastView() *ToastView {
	return &ToastView{}
}

// Render renders the toast aligned to the right of the given width.
func (v *ToastView) Render(t *dialog.Toast, width int) string {
	if t == nil {
		return ""
	}

	color := styles.KindColor(string(t.Kind))
	icon := lipgloss.NewStyle().Bold(true).Foreground(color).Render(styles.KindIcon(string(t.Kind)))
	box := styles.ToastBox.BorderForeground(color).Render(icon + " " + styles.Text.Render(t.Title))

	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
}
