package app

import (
	"testing"

	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/store"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(store.NewMemStore(), store.NewMemStore(), nil)
}

func TestNewStateRestoresSeedCatalog(t *testing.T) {
	s := newTestState(t)

	if len(s.Catalog.Products) != 3 {
		t.Errorf("len(Products) = %d, want 3 (factory seed)", len(s.Catalog.Products))
	}
	if s.Cart.Len() != 0 {
		t.Errorf("Cart.Len() = %d, want 0", s.Cart.Len())
	}
	if !s.Session.IsVisitor() {
		t.Error("fresh state should start as visitor")
	}
}

func TestNewStateRestoresPersistedData(t *testing.T) {
	durable := store.NewMemStore()
	sessionStore := store.NewMemStore()

	// First run: mutate and let the state write through.
	first := NewState(durable, sessionStore, nil)
	first.Session.Login(session.RoleUser)
	first.AddToCart(1, catalog.KindProduct)
	first.AddToCart(1, catalog.KindProduct)

	// Second run over the same stores restores everything.
	second := NewState(durable, sessionStore, nil)
	if second.Cart.Len() != 1 {
		t.Fatalf("Cart.Len() = %d, want 1", second.Cart.Len())
	}
	if got := second.Cart.Lines()[0].Qty; got != 2 {
		t.Errorf("restored Qty = %d, want 2", got)
	}
	if second.Session.Current() != session.RoleUser {
		t.Errorf("restored role = %q, want user", second.Session.Current())
	}
}

func TestReloadDiscardsInMemoryState(t *testing.T) {
	s := newTestState(t)
	s.Catalog.DeleteProduct(1)

	// The deletion above was never persisted, so a reload resurrects it.
	s.Reload()
	if s.Catalog.FindProduct(1) == nil {
		t.Error("Reload() should discard unpersisted catalog changes")
	}
}
