package app

import (
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/dialog"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/store"
)

// AddToCart resolves the referenced item within the kind partition and
// records one unit of it. Unknown references are a silent no-op. The
// snapshot taken at add time means later catalog price edits never change
// existing lines.
func (s *State) AddToCart(id int64, kind catalog.Kind) Event {
	item := s.Catalog.Find(kind, id)
	if item == nil {
		s.log.Debug("add to cart ignored: item not found", "id", id, "kind", string(kind))
		return Event{}
	}

	s.Cart.Add(item)
	s.persistCart()
	s.log.Info("item added to cart", "id", id, "name", item.Name)

	return Event{
		Views: []ViewID{ViewCart, ViewNavbar},
		Toast: dialog.NewToast(dialog.Success, "Agregado al carrito"),
	}
}

// UpdateQty adds delta to a line's quantity; dropping to zero or below
// removes the line. Unknown ids are a no-op.
func (s *State) UpdateQty(id int64, delta int) Event {
	if !s.Cart.UpdateQty(id, delta) {
		return Event{}
	}
	s.persistCart()
	s.log.Debug("cart quantity updated", "id", id, "delta", delta)
	return Event{Views: []ViewID{ViewCart, ViewNavbar}}
}

// ConfirmRemoveFromCart describes the prompt guarding line removal.
func ConfirmRemoveFromCart() dialog.Confirm {
	return dialog.Confirm{
		Title:       "¿Eliminar del carrito?",
		Kind:        dialog.Warning,
		AcceptLabel: "Sí, eliminar",
		CancelLabel: "Cancelar",
	}
}

// RemoveFromCart filters out a line. Call only after the user accepted
// ConfirmRemoveFromCart; cancellation must leave the cart untouched.
func (s *State) RemoveFromCart(id int64) Event {
	if !s.Cart.Remove(id) {
		return Event{}
	}
	s.persistCart()
	s.log.Info("cart line removed", "id", id)
	return Event{
		Views: []ViewID{ViewCart, ViewNavbar},
		Toast: dialog.NewToast(dialog.Info, "Producto eliminado"),
	}
}

// CheckoutOutcome classifies the result of a checkout attempt.
type CheckoutOutcome int

const (
	// CheckoutEmpty aborts: there is nothing to order.
	CheckoutEmpty CheckoutOutcome = iota
	// CheckoutNeedsLogin aborts: visitors must pick a role first.
	CheckoutNeedsLogin
	// CheckoutReady proceeds: show the success confirmation, then call
	// CompleteCheckout on acknowledgment.
	CheckoutReady
)

// Checkout validates a checkout attempt. No state changes here: the cart
// is cleared only by CompleteCheckout after the user acknowledges the
// success dialog. No order is created anywhere; this is a terminal
// UI-only action.
func (s *State) Checkout() (CheckoutOutcome, Event) {
	if s.Cart.Len() == 0 {
		return CheckoutEmpty, Event{}
	}
	if s.Session.IsVisitor() {
		return CheckoutNeedsLogin, Event{
			Toast: dialog.NewToast(dialog.Warning, "Debes iniciar sesión"),
		}
	}
	return CheckoutReady, Event{}
}

// CheckoutEmptyDialog is the informational dialog for an empty cart.
func CheckoutEmptyDialog() dialog.Confirm {
	return dialog.Confirm{
		Title:       "Carrito vacío",
		Text:        "Agrega algo delicioso primero",
		Kind:        dialog.Info,
		AcceptLabel: "OK",
	}
}

// CheckoutSuccessDialog is the confirmation shown for a valid checkout.
func CheckoutSuccessDialog() dialog.Confirm {
	return dialog.Confirm{
		Title:       "¡Pedido Enviado!",
		Text:        "Tu orden está volando hacia la cocina.",
		Kind:        dialog.Success,
		AcceptLabel: "¡Genial!",
	}
}

// CompleteCheckout clears the cart and persists the empty state. Call
// after the user acknowledged CheckoutSuccessDialog.
func (s *State) CompleteCheckout() Event {
	s.Cart.Clear()
	s.persistCart()
	s.log.Info("checkout completed, cart cleared")
	return Event{Views: []ViewID{ViewCart, ViewNavbar}}
}

// AddProduct constructs and appends an admin-created product. Empty name
// or unparseable/non-positive price is silently rejected: no error
// dialog, no persistence. Role gating happens in the UI; this method does
// not re-check it.
func (s *State) AddProduct(name, price string) Event {
	p := s.Catalog.AddProduct(name, price)
	if p == nil {
		s.log.Debug("add product rejected", "name", name, "price", price)
		return Event{}
	}
	s.persistCatalog()
	s.log.Info("product created", "id", p.ID, "name", p.Name, "price", p.Price)
	return Event{
		Views: []ViewID{ViewHome},
		Toast: dialog.NewToast(dialog.Success, "Producto creado"),
	}
}

// ConfirmDeleteProduct describes the prompt guarding product deletion.
func ConfirmDeleteProduct() dialog.Confirm {
	return dialog.Confirm{
		Title:       "¿Estás seguro?",
		Text:        "No podrás revertir esta acción",
		Kind:        dialog.Warning,
		AcceptLabel: "Sí, borrar",
		CancelLabel: "Cancelar",
	}
}

// DeleteProduct removes a product by id. Idempotent: absent ids no-op.
// Call only after the user accepted ConfirmDeleteProduct.
func (s *State) DeleteProduct(id int64) Event {
	if !s.Catalog.DeleteProduct(id) {
		return Event{}
	}
	s.persistCatalog()
	s.log.Info("product deleted", "id", id)
	return Event{
		Views: []ViewID{ViewHome, ViewDetails},
		Toast: dialog.NewToast(dialog.Success, "El producto ha sido eliminado"),
	}
}

// ConfirmResetFactory describes the prompt guarding the factory reset.
func ConfirmResetFactory() dialog.Confirm {
	return dialog.Confirm{
		Title:       "¿Restaurar Fábrica?",
		Text:        "Se borrarán todos los productos nuevos",
		Kind:        dialog.Danger,
		AcceptLabel: "Sí, restaurar",
		CancelLabel: "Cancelar",
	}
}

// ResetFactory erases the persisted catalog entry entirely, so the next
// load falls back to the seed data, then forces a full state reload.
// Call only after the user accepted ConfirmResetFactory.
func (s *State) ResetFactory() Event {
	if err := s.durable.Remove(store.CatalogKey); err != nil {
		s.log.Error("factory reset failed", "error", err)
	}
	s.log.Warn("factory reset performed")
	return s.Reload()
}

// Login sets the current role and persists it for the session. All open
// catalog and detail views must re-render so role-gated buttons update.
func (s *State) Login(role session.Role) Event {
	if !s.Session.Login(role) {
		return Event{}
	}
	s.log.Info("role selected", "role", string(role))
	return Event{
		Views: []ViewID{ViewHome, ViewDetails, ViewNavbar},
		Toast: dialog.NewToast(dialog.Success, "Hola, "+role.Display()),
	}
}

// ConfirmLogout describes the prompt guarding logout.
func ConfirmLogout() dialog.Confirm {
	return dialog.Confirm{
		Title:       "¿Cerrar sesión?",
		Text:        "Volverás al modo visitante",
		Kind:        dialog.Warning,
		AcceptLabel: "Sí, salir",
		CancelLabel: "Cancelar",
	}
}

// Logout resets the role to visitor and clears the session store. When
// invoked from the cart view the whole state reloads, resetting any
// role-dependent cart affordances. Call only after the user accepted
// ConfirmLogout.
func (s *State) Logout(onCartView bool) Event {
	s.Session.Logout()
	s.log.Info("logged out")

	views := []ViewID{ViewHome, ViewDetails, ViewNavbar}
	if onCartView {
		ev := s.Reload()
		views = ev.Views
	}
	return Event{
		Views: views,
		Toast: dialog.NewToast(dialog.Info, "Sesión cerrada"),
	}
}
