package view

import (
	"strings"

	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// RolePickerRoles lists the selectable roles in display order.
var RolePickerRoles = []session.Role{
	session.RoleVisitor,
	session.RoleUser,
	session.RoleAdmin,
}

// RolePickerState holds the state needed to render the role picker modal.
type RolePickerState struct {
	// Selected is the highlighted option index.
	Selected int
}

// RolePickerView renders the role selection modal. The roles are a
// cosmetic profile choice, not credentials.
type RolePickerView struct{}

// NewRolePickerView creates a new RolePickerView instance.
func NewRolePickerView() *RolePickerView {
	return &RolePickerView{}
}

// Render renders the role picker modal.
func (v *RolePickerView) Render(s RolePickerState) string {
	var b strings.Builder

	b.WriteString(styles.ModalTitle.Render("Bienvenido a Pizzarten"))
	b.WriteString("\n")
	b.WriteString(styles.ModalText.Render("Selecciona un perfil:"))
	b.WriteString("\n")

	labels := []string{"Visitante", "Cliente Registrado", "Administrador"}
	for i, label := range labels {
		if i == s.Selected {
			b.WriteString(styles.ActionPrimary.Render("▸ " + label))
		} else {
			b.WriteString(styles.ActionSecondary.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("[↑/↓]"))
	b.WriteString(styles.Muted.Render(" elegir  "))
	b.WriteString(styles.HelpKey.Render("[enter]"))
	b.WriteString(styles.Muted.Render(" confirmar  "))
	b.WriteString(styles.HelpKey.Render("[esc]"))
	b.WriteString(styles.Muted.Render(" cerrar"))

	return styles.Modal.Render(b.String())
}
