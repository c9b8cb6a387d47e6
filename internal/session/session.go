// Package session tracks the current mock role. The role is a cosmetic
// capability selector, not a credential: it is chosen directly by the
// user via the role picker and persists only for the lifetime of the
// process, in the session-scoped store.
package session

import "github.com/pizzarten/pizzarten/internal/store"

// Role is the mock-session capability level.
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleVisitor, RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Display returns the role name for UI display.
func (r Role) Display() string {
	switch r {
	case RoleUser:
		return "CLIENTE"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "VISITANTE"
	}
}

// Manager owns the process-wide current role, backed by the
// session-scoped store. It performs no authorization: capability gating
// happens in the UI only.
type Manager struct {
	store   store.Store
	current Role
}

// NewManager creates a Manager defaulting to the visitor role.
func NewManager(s store.Store) *Manager {
	return &Manager{store: s, current: RoleVisitor}
}

// Check restores a previously chosen role from the session store.
// Run once at startup; absent or unknown values leave the visitor default.
func (m *Manager) Check() Role {
	data, err := m.store.Get(store.RoleKey)
	if err == nil {
		if r := Role(data); r.Valid() {
			m.current = r
		}
	}
	return m.current
}

// Current returns the current role.
func (m *Manager) Current() Role {
	return m.current
}

// IsVisitor reports whether no role has been selected.
func (m *Manager) IsVisitor() bool {
	return m.current == RoleVisitor
}

// IsAdmin reports whether the admin role is active.
func (m *Manager) IsAdmin() bool {
	return m.current == RoleAdmin
}

// Login sets and persists the current role. Unknown roles are ignored.
func (m *Manager) Login(r Role) bool {
	if !r.Valid() {
		return false
	}
	m.current = r
	_ = m.store.Set(store.RoleKey, []byte(r))
	return true
}

// Logout resets the role to visitor and clears the session store.
func (m *Manager) Logout() {
	m.current = RoleVisitor
	_ = m.store.Remove(store.RoleKey)
}
