package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pizzarten/pizzarten/internal/app"
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/store"
	"github.com/pizzarten/pizzarten/internal/tui/view"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	state := app.NewState(store.NewMemStore(), store.NewMemStore(), nil)
	m := NewModel(state, nil, nil, Options{})
	m.width = 100
	m.height = 40
	m.ready = true
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaultsToHome(t *testing.T) {
	m := newTestModel(t)
	if m.page != view.PageHome {
		t.Errorf("page = %q, want home", m.page)
	}

	state := app.NewState(store.NewMemStore(), store.NewMemStore(), nil)
	m = NewModel(state, nil, nil, Options{Page: "somewhere"})
	if m.page != view.PageHome {
		t.Errorf("page = %q, want home for unknown page option", m.page)
	}
}

func TestDeepLinkToDetails(t *testing.T) {
	state := app.NewState(store.NewMemStore(), store.NewMemStore(), nil)
	m := NewModel(state, nil, nil, Options{Page: view.PageDetails, Kind: catalog.KindBundle, ID: 101})

	if m.page != view.PageDetails || m.detailKind != catalog.KindBundle || m.detailID != 101 {
		t.Errorf("deep link not applied: page=%q kind=%q id=%d", m.page, m.detailKind, m.detailID)
	}
}

func TestWindowSizeMarksReady(t *testing.T) {
	state := app.NewState(store.NewMemStore(), store.NewMemStore(), nil)
	m := NewModel(state, nil, nil, Options{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = updated.(Model)
	if !m.ready || m.width != 90 || m.height != 30 {
		t.Errorf("window size not applied: ready=%v width=%d height=%d", m.ready, m.width, m.height)
	}
}

func TestVisitorAddOpensRolePicker(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)

	if m.modal != modalRolePicker {
		t.Errorf("modal = %v, want role picker for visitor add", m.modal)
	}
	if m.state.Cart.Len() != 0 {
		t.Error("visitor add must not touch the cart")
	}
}

func TestLoggedInAddGoesToCart(t *testing.T) {
	m := newTestModel(t)
	m.state.Login(session.RoleUser)

	updated, cmd := m.Update(keyMsg("a"))
	m = updated.(Model)

	if m.state.Cart.Len() != 1 {
		t.Fatalf("Cart.Len() = %d, want 1", m.state.Cart.Len())
	}
	if m.toast == nil {
		t.Error("successful add should set a toast")
	}
	if cmd == nil {
		t.Error("toast should schedule an expiry tick")
	}
}

func TestToastExpirySequenceGuard(t *testing.T) {
	m := newTestModel(t)
	m.state.Login(session.RoleUser)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)
	staleSeq := m.toastSeq

	// A second toast supersedes the first; the stale tick must not
	// dismiss it.
	updated, _ = m.Update(keyMsg("a"))
	m = updated.(Model)

	updated, _ = m.Update(toastExpiredMsg{seq: staleSeq})
	m = updated.(Model)
	if m.toast == nil {
		t.Error("stale expiry tick dismissed the newer toast")
	}

	updated, _ = m.Update(toastExpiredMsg{seq: m.toastSeq})
	m = updated.(Model)
	if m.toast != nil {
		t.Error("matching expiry tick should dismiss the toast")
	}
}

func TestConfirmCancelDiscardsOperation(t *testing.T) {
	m := newTestModel(t)
	m.state.Login(session.RoleAdmin)

	// Open the delete confirmation for the selected product.
	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	if m.modal != modalConfirm {
		t.Fatalf("modal = %v, want confirm", m.modal)
	}

	// Esc cancels: the product survives.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.modal != modalNone {
		t.Errorf("modal = %v, want none after cancel", m.modal)
	}
	if m.state.Catalog.FindProduct(1) == nil {
		t.Error("cancelled delete must not remove the product")
	}
}

func TestConfirmAcceptRunsOperation(t *testing.T) {
	m := newTestModel(t)
	m.state.Login(session.RoleAdmin)

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.state.Catalog.FindProduct(1) != nil {
		t.Error("accepted delete should remove the product")
	}
	if m.toast == nil {
		t.Error("accepted delete should toast")
	}
}

func TestAdminKeysIgnoredForOtherRoles(t *testing.T) {
	m := newTestModel(t)
	m.state.Login(session.RoleUser)

	for _, key := range []string{"d", "n", "F"} {
		updated, _ := m.Update(keyMsg(key))
		m = updated.(Model)
		if m.modal != modalNone {
			t.Errorf("key %q opened a modal for a non-admin role", key)
		}
	}
}

func TestRolePickerLogin(t *testing.T) {
	m := newTestModel(t)
	m.modal = modalRolePicker
	m.rolePickerSel = 0

	// Move down twice to Admin, then confirm.
	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.modal != modalNone {
		t.Errorf("modal = %v, want none after login", m.modal)
	}
	if !m.state.Session.IsAdmin() {
		t.Errorf("role = %q, want admin", m.state.Session.Current())
	}
}

func TestCheckoutEmptyCartShowsDialog(t *testing.T) {
	m := newTestModel(t)
	m.page = view.PageCart

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.modal != modalConfirm {
		t.Fatalf("modal = %v, want confirm dialog", m.modal)
	}
	if m.confirm.then != nil {
		t.Error("empty-cart dialog must not carry a continuation")
	}
}

func TestCheckoutFlowClearsCartOnAcknowledge(t *testing.T) {
	m := newTestModel(t)
	m.state.Login(session.RoleUser)
	m.state.AddToCart(1, catalog.KindProduct)
	m.page = view.PageCart

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.modal != modalConfirm {
		t.Fatalf("modal = %v, want success dialog", m.modal)
	}
	if m.state.Cart.Len() != 1 {
		t.Fatal("cart must survive until the dialog is acknowledged")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.state.Cart.Len() != 0 {
		t.Error("acknowledging the success dialog should clear the cart")
	}
}

func TestClampSelectionsAfterShrink(t *testing.T) {
	m := newTestModel(t)
	m.state.Login(session.RoleUser)
	m.state.AddToCart(1, catalog.KindProduct)
	m.cartSel = 0

	m.state.RemoveFromCart(1)
	m.clampSelections()

	if m.cartSel != 0 {
		t.Errorf("cartSel = %d, want 0", m.cartSel)
	}

	m.homeSel = 99
	m.clampSelections()
	if max := m.homeState().ItemCount() - 1; m.homeSel != max {
		t.Errorf("homeSel = %d, want clamped to %d", m.homeSel, max)
	}
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m := newTestModel(t)

	for _, page := range []string{view.PageHome, view.PageDetails, view.PageCart} {
		m.page = page
		if out := m.View(); out == "" {
			t.Errorf("View() on page %q returned empty output", page)
		}
	}

	m.modal = modalRolePicker
	if out := m.View(); out == "" {
		t.Error("View() with open modal returned empty output")
	}
}
