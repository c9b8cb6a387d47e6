package view

import (
	"strings"

	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// Page is the active page identifier.
	Page string
	// Role controls which role-gated hints appear.
	Role session.Role
}

// HelpBarView renders the contextual key hints at the bottom of the screen.
type HelpBarView struct{}

// NewHelpBarView creates a new HelpBarView instance.
func NewHelpBarView() *HelpBarView {
	return &HelpBarView{}
}

// Render renders the help bar for the given state.
func (v *HelpBarView) Render(s HelpBarState) string {
	var hints []string

	switch s.Page {
	case PageHome:
		hints = append(hints,
			hint("←/→", "elegir"),
			hint("enter", "detalle"),
			hint("a", "agregar"),
			hint("c", "carrito"),
		)
		if s.Role == session.RoleAdmin {
			hints = append(hints, hint("n", "nueva"), hint("d", "eliminar"), hint("F", "reset"))
		}
	case PageDetails:
		hints = append(hints,
			hint("a", "agregar"),
			hint("h", "inicio"),
			hint("c", "carrito"),
		)
	case PageCart:
		hints = append(hints,
			hint("↑/↓", "elegir"),
			hint("+/-", "cantidad"),
			hint("x", "eliminar"),
			hint("enter", "pedido"),
			hint("h", "inicio"),
		)
	}

	if s.Role == session.RoleVisitor {
		hints = append(hints, hint("l", "acceder"))
	} else {
		hints = append(hints, hint("o", "salir"))
	}
	hints = append(hints, hint("q", "cerrar"))

	return styles.HelpBar.Render(strings.Join(hints, "  "))
}

func hint(key, label string) string {
	return styles.HelpKey.Render("["+key+"]") + " " + label
}
