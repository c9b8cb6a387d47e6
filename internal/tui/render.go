package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pizzarten/pizzarten/internal/tui/view"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Cargando Pizzarten..."
	}

	navbar := m.navbar.Render(view.NavbarState{
		Page:      m.page,
		CartCount: m.state.Cart.Count(),
		Role:      m.state.Session.Current(),
		Width:     m.width,
	})

	toast := m.toastView.Render(m.toast, m.width)

	body := m.renderBody()

	helpBar := m.helpBar.Render(view.HelpBarState{
		Page: m.page,
		Role: m.state.Session.Current(),
	})

	footer := m.footer.Render(m.state.Catalog.Company.FooterText, m.width)

	var b strings.Builder
	b.WriteString(navbar)
	b.WriteString("\n")
	if toast != "" {
		b.WriteString(toast)
		b.WriteString("\n")
	}
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(helpBar)
	if footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}
	return b.String()
}

// renderBody renders the active page, or the open modal centered over a
// blank body. Modals fully capture attention as well as input.
func (m Model) renderBody() string {
	if overlay := m.renderModal(); overlay != "" {
		height := m.height - 6
		if height < 1 {
			height = 1
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, overlay)
	}

	switch m.page {
	case view.PageDetails:
		return m.detail.Render(view.DetailState{
			Item:          m.state.Catalog.Find(m.detailKind, m.detailID),
			Role:          m.state.Session.Current(),
			ShowImageRefs: m.cfg.TUI.ShowImageRefs,
			Width:         m.width,
		})

	case view.PageCart:
		return m.cartView.Render(view.CartState{
			Lines:    m.state.Cart.Lines(),
			Totals:   m.state.Cart.ComputeTotals(),
			Selected: m.cartSel,
			Width:    m.width,
		})

	default:
		return m.home.Render(m.homeState())
	}
}

func (m Model) renderModal() string {
	switch m.modal {
	case modalRolePicker:
		return m.rolePicker.Render(view.RolePickerState{Selected: m.rolePickerSel})

	case modalConfirm:
		return m.confirmView.Render(m.confirm.dialog)

	case modalProductForm:
		return m.productForm.Render(view.ProductFormState{
			NameInput:  m.nameInput.View(),
			PriceInput: m.priceInput.View(),
		})
	}
	return ""
}
