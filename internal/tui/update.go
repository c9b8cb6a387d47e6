package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pizzarten/pizzarten/internal/app"
	"github.com/pizzarten/pizzarten/internal/cart"
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/tui/view"
)

// Update implements tea.Model. All model mutations happen synchronously
// inside key handlers; the only asynchronous suspension points are the
// confirmation modals, which buffer the pending operation until the user
// resolves them.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// dispatch applies an operation result: re-clamps selections for the
// refreshed views and schedules the toast, if any.
func (m Model) dispatch(ev app.Event) (Model, tea.Cmd) {
	m.clampSelections()

	var cmd tea.Cmd
	if ev.Toast != nil {
		m.toastSeq++
		m.toast = ev.Toast
		seq := m.toastSeq
		cmd = tea.Tick(m.toastDuration(), func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})
	}
	return m, cmd
}

// handleKey routes a key press: open modals capture all input; otherwise
// the active page handles it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalRolePicker:
		return m.handleRolePickerKey(msg)
	case modalConfirm:
		return m.handleConfirmKey(msg)
	case modalProductForm:
		return m.handleProductFormKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "h":
		m.page = view.PageHome
		return m, nil
	case "c":
		m.page = view.PageCart
		return m, nil
	case "l":
		if m.state.Session.IsVisitor() {
			m.modal = modalRolePicker
			m.rolePickerSel = 0
		}
		return m, nil
	case "o":
		if !m.state.Session.IsVisitor() {
			onCart := m.page == view.PageCart
			m.confirm = pendingConfirm{
				dialog: app.ConfirmLogout(),
				then:   func() app.Event { return m.state.Logout(onCart) },
			}
			m.modal = modalConfirm
		}
		return m, nil
	}

	switch m.page {
	case view.PageHome:
		return m.handleHomeKey(msg)
	case view.PageDetails:
		return m.handleDetailsKey(msg)
	case view.PageCart:
		return m.handleCartKey(msg)
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "down", "j", "tab":
		if m.homeSel < m.homeState().ItemCount()-1 {
			m.homeSel++
		}
		return m, nil

	case "left", "up", "k", "shift+tab":
		if m.homeSel > 0 {
			m.homeSel--
		}
		return m, nil

	case "enter":
		if kind, id, ok := m.selectedHomeItem(); ok {
			m.page = view.PageDetails
			m.detailKind = kind
			m.detailID = id
		}
		return m, nil

	case "a":
		return m.addSelectedToCart()

	case "d":
		if !m.state.Session.IsAdmin() {
			return m, nil
		}
		kind, id, ok := m.selectedHomeItem()
		if !ok || kind != catalog.KindProduct {
			return m, nil
		}
		m.confirm = pendingConfirm{
			dialog: app.ConfirmDeleteProduct(),
			then:   func() app.Event { return m.state.DeleteProduct(id) },
		}
		m.modal = modalConfirm
		return m, nil

	case "n":
		if !m.state.Session.IsAdmin() {
			return m, nil
		}
		m.modal = modalProductForm
		m.formFocus = 0
		m.nameInput.SetValue("")
		m.priceInput.SetValue("")
		m.nameInput.Focus()
		m.priceInput.Blur()
		return m, nil

	case "F":
		if !m.state.Session.IsAdmin() {
			return m, nil
		}
		m.confirm = pendingConfirm{
			dialog: app.ConfirmResetFactory(),
			then:   func() app.Event { return m.state.ResetFactory() },
		}
		m.modal = modalConfirm
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.page = view.PageHome
		return m, nil
	case "a":
		return m.addToCart(m.detailKind, m.detailID)
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down", "j":
		if m.cartSel < m.state.Cart.Len()-1 {
			m.cartSel++
		}
		return m, nil

	case "up", "k":
		if m.cartSel > 0 {
			m.cartSel--
		}
		return m, nil

	case "+", "=", "right":
		if line, ok := m.selectedCartLine(); ok {
			ev := m.state.UpdateQty(line.ID, 1)
			return m.dispatch(ev)
		}
		return m, nil

	case "-", "left":
		if line, ok := m.selectedCartLine(); ok {
			ev := m.state.UpdateQty(line.ID, -1)
			return m.dispatch(ev)
		}
		return m, nil

	case "x", "delete", "backspace":
		line, ok := m.selectedCartLine()
		if !ok {
			return m, nil
		}
		id := line.ID
		m.confirm = pendingConfirm{
			dialog: app.ConfirmRemoveFromCart(),
			then:   func() app.Event { return m.state.RemoveFromCart(id) },
		}
		m.modal = modalConfirm
		return m, nil

	case "enter":
		return m.startCheckout()
	}
	return m, nil
}

// addSelectedToCart adds the highlighted home card to the cart, or opens
// the role picker for visitors.
func (m Model) addSelectedToCart() (tea.Model, tea.Cmd) {
	kind, id, ok := m.selectedHomeItem()
	if !ok {
		return m, nil
	}
	return m.addToCart(kind, id)
}

func (m Model) addToCart(kind catalog.Kind, id int64) (tea.Model, tea.Cmd) {
	if m.state.Session.IsVisitor() {
		m.modal = modalRolePicker
		m.rolePickerSel = 0
		return m, nil
	}
	ev := m.state.AddToCart(id, kind)
	return m.dispatch(ev)
}

// startCheckout runs the checkout validation and opens the matching
// dialog. The cart is cleared only after the success dialog is
// acknowledged.
func (m Model) startCheckout() (tea.Model, tea.Cmd) {
	outcome, ev := m.state.Checkout()
	switch outcome {
	case app.CheckoutEmpty:
		m.confirm = pendingConfirm{dialog: app.CheckoutEmptyDialog()}
		m.modal = modalConfirm
		return m, nil

	case app.CheckoutNeedsLogin:
		m.modal = modalRolePicker
		m.rolePickerSel = 0
		return m.dispatch(ev)

	default:
		m.confirm = pendingConfirm{
			dialog: app.CheckoutSuccessDialog(),
			then:   func() app.Event { return m.state.CompleteCheckout() },
		}
		m.modal = modalConfirm
		return m, nil
	}
}

func (m Model) handleRolePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil

	case "down", "j", "tab":
		if m.rolePickerSel < len(view.RolePickerRoles)-1 {
			m.rolePickerSel++
		}
		return m, nil

	case "up", "k", "shift+tab":
		if m.rolePickerSel > 0 {
			m.rolePickerSel--
		}
		return m, nil

	case "enter":
		role := view.RolePickerRoles[m.rolePickerSel]
		m.modal = modalNone
		ev := m.state.Login(role)
		return m.dispatch(ev)
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		then := m.confirm.then
		m.modal = modalNone
		m.confirm = pendingConfirm{}
		if then == nil {
			return m, nil
		}
		return m.dispatch(then())

	case "esc", "n":
		// Cancellation aborts with no side effects.
		m.modal = modalNone
		m.confirm = pendingConfirm{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleProductFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.formFocus = 1 - m.formFocus
		if m.formFocus == 0 {
			m.nameInput.Focus()
			m.priceInput.Blur()
		} else {
			m.nameInput.Blur()
			m.priceInput.Focus()
		}
		return m, nil

	case "enter":
		name := m.nameInput.Value()
		price := m.priceInput.Value()
		m.modal = modalNone
		// Invalid input is silently rejected by the model layer.
		ev := m.state.AddProduct(name, price)
		return m.dispatch(ev)
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.priceInput, cmd = m.priceInput.Update(msg)
	}
	return m, cmd
}

// selectedCartLine returns the highlighted cart line.
func (m Model) selectedCartLine() (cart.Line, bool) {
	lines := m.state.Cart.Lines()
	if m.cartSel < 0 || m.cartSel >= len(lines) {
		return cart.Line{}, false
	}
	return lines[m.cartSel], true
}
