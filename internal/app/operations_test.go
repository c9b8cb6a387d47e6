package app

import (
	"testing"

	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/dialog"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/store"
)

func TestAddToCart(t *testing.T) {
	durable := store.NewMemStore()
	s := NewState(durable, store.NewMemStore(), nil)

	ev := s.AddToCart(1, catalog.KindProduct)
	if !ev.Changed() {
		t.Error("AddToCart() should name views to refresh")
	}
	if ev.Toast == nil || ev.Toast.Title != "Agregado al carrito" {
		t.Errorf("Toast = %+v, want success toast", ev.Toast)
	}
	if s.Cart.Len() != 1 {
		t.Errorf("Cart.Len() = %d, want 1", s.Cart.Len())
	}

	// The cart write-through happens on every mutation.
	if _, err := durable.Get(store.CartKey); err != nil {
		t.Errorf("cart not persisted: %v", err)
	}
}

func TestAddToCartUnknownItemIsNoOp(t *testing.T) {
	durable := store.NewMemStore()
	s := NewState(durable, store.NewMemStore(), nil)

	ev := s.AddToCart(9999, catalog.KindProduct)
	if ev.Changed() || ev.Toast != nil {
		t.Errorf("AddToCart(unknown) = %+v, want empty event", ev)
	}
	if s.Cart.Len() != 0 {
		t.Errorf("Cart.Len() = %d, want 0", s.Cart.Len())
	}
	if _, err := durable.Get(store.CartKey); err == nil {
		t.Error("no-op must not write to the store")
	}
}

func TestAddToCartKindPartition(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)

	// Bundle 101 exists, but not within the menu partition.
	if ev := s.AddToCart(101, catalog.KindProduct); ev.Changed() {
		t.Error("AddToCart(101, menu) should be a no-op")
	}
	if ev := s.AddToCart(101, catalog.KindBundle); !ev.Changed() {
		t.Error("AddToCart(101, combo) should succeed")
	}
}

func TestAddToCartSnapshotPricing(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)
	s.AddToCart(1, catalog.KindProduct)

	// Mutating the catalog price after the add leaves the line untouched.
	s.Catalog.Products[0].Price = 99.99
	if got := s.Cart.Lines()[0].Price; got != 14.99 {
		t.Errorf("line price = %v, want snapshot 14.99", got)
	}
}

func TestUpdateQtyAndRemove(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)
	s.AddToCart(1, catalog.KindProduct)

	if ev := s.UpdateQty(1, 1); !ev.Changed() {
		t.Error("UpdateQty(+1) should name views")
	}
	if ev := s.UpdateQty(42, 1); ev.Changed() {
		t.Error("UpdateQty(unknown) should be a no-op")
	}

	ev := s.RemoveFromCart(1)
	if ev.Toast == nil || ev.Toast.Title != "Producto eliminado" {
		t.Errorf("Toast = %+v, want removal toast", ev.Toast)
	}
	if s.Cart.Len() != 0 {
		t.Errorf("Cart.Len() = %d, want 0", s.Cart.Len())
	}

	if ev := s.RemoveFromCart(1); ev.Changed() {
		t.Error("RemoveFromCart() of absent line should be a no-op")
	}
}

func TestCheckoutOutcomes(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)

	// Empty cart aborts regardless of role.
	if outcome, _ := s.Checkout(); outcome != CheckoutEmpty {
		t.Errorf("Checkout() on empty cart = %v, want CheckoutEmpty", outcome)
	}

	s.AddToCart(1, catalog.KindProduct)

	// Visitors are told to log in; the cart is untouched.
	outcome, ev := s.Checkout()
	if outcome != CheckoutNeedsLogin {
		t.Errorf("Checkout() as visitor = %v, want CheckoutNeedsLogin", outcome)
	}
	if ev.Toast == nil || ev.Toast.Kind != dialog.Warning {
		t.Errorf("Toast = %+v, want warning toast", ev.Toast)
	}
	if s.Cart.Len() != 1 {
		t.Error("visitor checkout must not touch the cart")
	}

	s.Login(session.RoleUser)
	if outcome, _ := s.Checkout(); outcome != CheckoutReady {
		t.Errorf("Checkout() as user = %v, want CheckoutReady", outcome)
	}

	// The cart is cleared only on explicit completion.
	if s.Cart.Len() != 1 {
		t.Error("Checkout() itself must not clear the cart")
	}
	s.CompleteCheckout()
	if s.Cart.Len() != 0 {
		t.Error("CompleteCheckout() should clear the cart")
	}
}

func TestCompleteCheckoutPersistsEmptyCart(t *testing.T) {
	durable := store.NewMemStore()
	s := NewState(durable, store.NewMemStore(), nil)
	s.AddToCart(1, catalog.KindProduct)

	s.CompleteCheckout()

	data, err := durable.Get(store.CartKey)
	if err != nil {
		t.Fatalf("cart not persisted: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("persisted cart = %s, want []", data)
	}
}

func TestAddProduct(t *testing.T) {
	durable := store.NewMemStore()
	s := NewState(durable, store.NewMemStore(), nil)
	before := len(s.Catalog.Products)

	ev := s.AddProduct("Nueva Obra", "10.50")
	if ev.Toast == nil || ev.Toast.Title != "Producto creado" {
		t.Errorf("Toast = %+v, want creation toast", ev.Toast)
	}
	if len(s.Catalog.Products) != before+1 {
		t.Errorf("len(Products) = %d, want %d", len(s.Catalog.Products), before+1)
	}
	if _, err := durable.Get(store.CatalogKey); err != nil {
		t.Errorf("catalog not persisted: %v", err)
	}
}

func TestAddProductSilentlyRejectsInvalidInput(t *testing.T) {
	durable := store.NewMemStore()
	s := NewState(durable, store.NewMemStore(), nil)

	ev := s.AddProduct("", "abc")
	if ev.Changed() || ev.Toast != nil {
		t.Errorf("AddProduct(invalid) = %+v, want empty event", ev)
	}
	if _, err := durable.Get(store.CatalogKey); err == nil {
		t.Error("rejected input must not write to the store")
	}
}

func TestDeleteProduct(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)

	ev := s.DeleteProduct(1)
	if !ev.Changed() || ev.Toast == nil {
		t.Errorf("DeleteProduct(1) = %+v, want views and toast", ev)
	}
	if s.Catalog.FindProduct(1) != nil {
		t.Error("product 1 should be gone")
	}

	if ev := s.DeleteProduct(1); ev.Changed() {
		t.Error("DeleteProduct() of absent id should be a no-op")
	}
}

func TestResetFactory(t *testing.T) {
	durable := store.NewMemStore()
	s := NewState(durable, store.NewMemStore(), nil)

	s.AddProduct("Temporal", "5.00")
	s.DeleteProduct(1)

	ev := s.ResetFactory()
	if !ev.Changed() {
		t.Error("ResetFactory() should name views")
	}

	// The catalog key is gone, so the reload fell back to the seed.
	if _, err := durable.Get(store.CatalogKey); err == nil {
		t.Error("ResetFactory() should remove the persisted catalog")
	}
	if len(s.Catalog.Products) != 3 {
		t.Errorf("len(Products) = %d, want 3 (factory seed)", len(s.Catalog.Products))
	}
	if s.Catalog.FindProduct(1) == nil {
		t.Error("deleted seed product should be back")
	}
}

func TestLogin(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)

	ev := s.Login(session.RoleAdmin)
	if ev.Toast == nil || ev.Toast.Title != "Hola, ADMIN" {
		t.Errorf("Toast = %+v, want greeting with role display", ev.Toast)
	}
	if !s.Session.IsAdmin() {
		t.Error("login should activate the admin role")
	}

	if ev := s.Login(session.Role("root")); ev.Changed() {
		t.Error("Login(unknown role) should be a no-op")
	}
}

func TestLogout(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)
	s.Login(session.RoleUser)

	ev := s.Logout(false)
	if !s.Session.IsVisitor() {
		t.Error("logout should reset to visitor")
	}
	if ev.Toast == nil || ev.Toast.Title != "Sesión cerrada" {
		t.Errorf("Toast = %+v, want logout toast", ev.Toast)
	}
}

func TestLogoutOnCartViewReloads(t *testing.T) {
	s := NewState(store.NewMemStore(), store.NewMemStore(), nil)
	s.Login(session.RoleAdmin)
	s.Catalog.DeleteProduct(1) // unpersisted

	s.Logout(true)

	// The cart-view logout reloads the full state, discarding the
	// unpersisted deletion.
	if s.Catalog.FindProduct(1) == nil {
		t.Error("logout on cart view should reload state from the store")
	}
}
