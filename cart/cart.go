// Package cart holds the shopping cart state for one session. A Manager is
// constructed per request from the session's persisted snapshot and writes
// the full snapshot back after every mutation. Persistence is best effort:
// a failed write keeps the in-memory cart correct for the request but the
// change may not survive a restart.
package cart

import (
	"fmt"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/localstore"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

// Provider hands out session-scoped managers. It is created once at the
// application root and injected into handlers, so there is no package-level
// cart state.
type Provider struct {
	store *localstore.Store
}

func NewProvider(store *localstore.Store) *Provider {
	return &Provider{store: store}
}

// Manager loads the cart snapshot for the given session. Absence and
// corruption both read as an empty cart.
func (p *Provider) Manager(sessionID string) *Manager {
	m := &Manager{store: p.store, key: localstore.CartKeyPrefix + sessionID}
	_ = p.store.Get(m.key, &m.items)
	return m
}

type Manager struct {
	store *localstore.Store
	key   string
	items []models.CartItem
}

// Add merges qty into an existing line with the same product id, or appends
// a new line. Returns the notice shown to the customer.
func (m *Manager) Add(item models.CartItem, qty int) string {
	if qty < 1 {
		qty = 1
	}
	found := false
	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		item.Quantity = qty
		m.items = append(m.items, item)
	}
	m.persist()
	return fmt.Sprintf("Added to cart: %d × %s", qty, item.Name)
}

// Remove deletes the line with the given product id; unknown ids are a no-op.
func (m *Manager) Remove(id string) {
	next := m.items[:0]
	for _, it := range m.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	m.items = next
	m.persist()
}

// UpdateQuantity sets the line's quantity. Callers clamp to 1 in their forms,
// but any qty <= 0 that still gets here removes the line: the cart never
// stores a non-positive quantity.
func (m *Manager) UpdateQuantity(id string, qty int) {
	next := m.items[:0]
	for _, it := range m.items {
		if it.ID == id {
			it.Quantity = qty
		}
		if it.Quantity > 0 {
			next = append(next, it)
		}
	}
	m.items = next
	m.persist()
}

// Clear empties the cart unconditionally.
func (m *Manager) Clear() {
	m.items = nil
	m.persist()
}

// Items returns a copy of the current lines.
func (m *Manager) Items() []models.CartItem {
	out := make([]models.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// TotalItems is recomputed from the lines on every call, never cached.
func (m *Manager) TotalItems() int {
	total := 0
	for _, it := range m.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is recomputed from the lines on every call, never cached.
func (m *Manager) TotalPrice() float64 {
	total := 0.0
	for _, it := range m.items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

func (m *Manager) persist() {
	// Best effort: a full snapshot after every mutation, errors swallowed.
	_ = m.store.Set(m.key, m.items)
}
