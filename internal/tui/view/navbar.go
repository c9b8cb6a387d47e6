// Package view provides the pure view renderers for the storefront TUI.
// Each renderer projects model state into a string; nothing here caches
// markup or mutates state, so role-gated affordances are re-derived on
// every invocation.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// Page identifiers used by the navbar and the page router.
const (
	PageHome    = "home"
	PageDetails = "details"
	PageCart    = "cart"
)

// NavbarState holds the state needed to render the navbar.
type NavbarState struct {
	// Page is the active page identifier.
	Page string
	// CartCount is the total quantity across all cart lines.
	CartCount int
	// Role is the current session role.
	Role session.Role
	// Width is the available width.
	Width int
}

// NavbarView renders the global navigation bar: logo, page links, the
// cart count badge, and the auth affordance.
type NavbarView struct{}

// NewNavbarView creates a new NavbarView instance.
func NewNavbarView() *NavbarView {
	return &NavbarView{}
}

// Render renders the navbar for the given state.
func (v *NavbarView) Render(s NavbarState) string {
	logo := styles.Logo.Render("PIZZ") + styles.LogoHighlight.Render("ARTEN")

	links := []string{
		v.renderLink("Inicio [h]", s.Page == PageHome),
		v.renderLink("Carrito [c]", s.Page == PageCart),
	}

	cartBadge := ""
	if s.CartCount > 0 {
		cartBadge = styles.CartBadge.Render(fmt.Sprintf("%d", s.CartCount))
	}

	auth := styles.Muted.Render("Acceder ") + styles.HelpKey.Render("[l]")
	if s.Role != session.RoleVisitor {
		auth = styles.RoleDisplay.Render(s.Role.Display()) +
			styles.Muted.Render(" salir ") + styles.HelpKey.Render("[o]")
	}

	left := logo + "  " + strings.Join(links, " ")
	right := cartBadge + "  " + auth

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return styles.NavBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}

func (v *NavbarView) renderLink(label string, active bool) string {
	if active {
		return styles.NavLinkActive.Render(label)
	}
	return styles.NavLink.Render(label)
}
