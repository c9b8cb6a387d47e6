// Package app wires the catalog, cart and session models into a single
// application state container, and exposes the mutating operations of the
// storefront. Every operation writes through to the durable store
// synchronously and returns an Event naming the views to refresh, so the
// model layer stays testable without a rendering environment.
package app

import (
	"github.com/pizzarten/pizzarten/internal/cart"
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/dialog"
	"github.com/pizzarten/pizzarten/internal/logging"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/store"
)

// ViewID names a page context whose rendered output depends on model state.
type ViewID string

const (
	ViewHome    ViewID = "home"
	ViewDetails ViewID = "details"
	ViewCart    ViewID = "cart"
	ViewNavbar  ViewID = "navbar"
)

// Event is the result of a mutating operation: which views must re-render,
// and an optional transient notification. The TUI dispatcher consumes it.
type Event struct {
	Views []ViewID
	Toast *dialog.Toast
}

// Changed reports whether the event names any view.
func (e Event) Changed() bool {
	return len(e.Views) > 0
}

// State is the single owning context for all storefront state during a
// run. The in-memory models are the source of truth; the durable store is
// flushed synchronously on every mutation.
type State struct {
	Catalog *catalog.Catalog
	Cart    *cart.Cart
	Session *session.Manager

	durable store.Store
	log     *logging.Logger
}

// NewState restores the full application state: session role first, then
// catalog and cart from the durable store (falling back to seed/empty).
// It never fails; worst case is an empty storefront.
func NewState(durable store.Store, sessionStore store.Store, log *logging.Logger) *State {
	if log == nil {
		log = logging.NopLogger()
	}

	s := &State{
		Session: session.NewManager(sessionStore),
		durable: durable,
		log:     log,
	}
	s.Session.Check()
	s.Catalog = catalog.Load(durable)
	s.Cart = cart.Load(durable)

	log.Debug("state restored",
		"role", string(s.Session.Current()),
		"products", len(s.Catalog.Products),
		"bundles", len(s.Catalog.Bundles),
		"cart_lines", s.Cart.Len(),
	)
	return s
}

// Reload re-reads catalog and cart from the durable store, discarding the
// in-memory copies. This is the full-page-reload analog used by factory
// reset and by logout on the cart view.
func (s *State) Reload() Event {
	s.Catalog = catalog.Load(s.durable)
	s.Cart = cart.Load(s.durable)
	s.log.Info("state reloaded")
	return Event{Views: []ViewID{ViewHome, ViewDetails, ViewCart, ViewNavbar}}
}

// persistCatalog flushes the catalog. Persistence failures are logged and
// swallowed: no storefront operation has a fatal path.
func (s *State) persistCatalog() {
	data, err := s.Catalog.Encode()
	if err != nil {
		s.log.Error("catalog encode failed", "error", err)
		return
	}
	if err := s.durable.Set(store.CatalogKey, data); err != nil {
		s.log.Error("catalog persist failed", "error", err)
	}
}

// persistCart flushes the cart.
func (s *State) persistCart() {
	data, err := s.Cart.Encode()
	if err != nil {
		s.log.Error("cart encode failed", "error", err)
		return
	}
	if err := s.durable.Set(store.CartKey, data); err != nil {
		s.log.Error("cart persist failed", "error", err)
	}
}
