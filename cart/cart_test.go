package cart

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/localstore"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return NewProvider(store)
}

func item(id string, price float64) models.CartItem {
	return models.CartItem{ID: id, Name: "Product " + id, Price: price}
}

func TestAdd_MergesSameID(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")

	m.Add(item("p1", 10), 2)
	m.Add(item("p1", 10), 3)
	m.Add(item("p1", 10), 1)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAdd_NeverDuplicatesIDs(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")

	for i := 0; i < 50; i++ {
		m.Add(item(fmt.Sprintf("p%d", i%5), 10), 1)
	}

	seen := map[string]bool{}
	for _, it := range m.Items() {
		assert.False(t, seen[it.ID], "duplicate cart entry for %s", it.ID)
		seen[it.ID] = true
	}
	assert.Len(t, m.Items(), 5)
}

func TestAdd_ReturnsNotice(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")

	notice := m.Add(models.CartItem{ID: "p1", Name: "Gold Label", Price: 99}, 2)
	assert.Equal(t, "Added to cart: 2 × Gold Label", notice)
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")

	m.Add(item("p1", 10), 0)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, 1, m.Items()[0].Quantity)
}

func TestRemove(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")
	m.Add(item("p1", 10), 1)
	m.Add(item("p2", 20), 1)

	m.Remove("p1")
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "p2", m.Items()[0].ID)

	// Removing an unknown id is a no-op.
	m.Remove("missing")
	assert.Len(t, m.Items(), 1)
}

func TestUpdateQuantity_NonPositiveRemoves(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestProvider(t).Manager("sess-1")
			m.Add(item("p1", 10), 2)

			m.UpdateQuantity("p1", tt.qty)
			assert.Empty(t, m.Items())
		})
	}
}

func TestUpdateQuantity_Sets(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")
	m.Add(item("p1", 10), 2)

	m.UpdateQuantity("p1", 7)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, 7, m.Items()[0].Quantity)
}

func TestClear(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")
	m.Add(item("p1", 10), 2)
	m.Add(item("p2", 20), 1)

	m.Clear()
	assert.Empty(t, m.Items())
	assert.Zero(t, m.TotalItems())
	assert.Zero(t, m.TotalPrice())
}

func TestTotals_NoDriftOverRandomMutations(t *testing.T) {
	m := newTestProvider(t).Manager("sess-1")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("p%d", rng.Intn(10))
		switch rng.Intn(3) {
		case 0:
			m.Add(item(id, float64(rng.Intn(100)+1)), rng.Intn(5)+1)
		case 1:
			m.Remove(id)
		case 2:
			m.UpdateQuantity(id, rng.Intn(7)-2)
		}

		wantItems, wantPrice := 0, 0.0
		for _, it := range m.Items() {
			require.Positive(t, it.Quantity, "cart held a non-positive quantity")
			wantItems += it.Quantity
			wantPrice += float64(it.Quantity) * it.Price
		}
		assert.Equal(t, wantItems, m.TotalItems())
		assert.InDelta(t, wantPrice, m.TotalPrice(), 1e-9)
	}
}

func TestPersistence_SurvivesReload(t *testing.T) {
	p := newTestProvider(t)

	m := p.Manager("sess-1")
	m.Add(item("p1", 10), 2)
	m.Add(item("p2", 5.5), 1)

	reloaded := p.Manager("sess-1")
	assert.Equal(t, m.Items(), reloaded.Items())
	assert.Equal(t, 3, reloaded.TotalItems())
	assert.InDelta(t, 25.5, reloaded.TotalPrice(), 1e-9)
}

func TestPersistence_SessionsAreIsolated(t *testing.T) {
	p := newTestProvider(t)

	p.Manager("sess-1").Add(item("p1", 10), 2)

	other := p.Manager("sess-2")
	assert.Empty(t, other.Items())
}

func TestLoad_CorruptSnapshotReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	require.NoError(t, err)

	// Poison the snapshot, then load.
	require.NoError(t, store.Set(localstore.CartKeyPrefix+"sess-1", "not a cart"))

	m := NewProvider(store).Manager("sess-1")
	assert.Empty(t, m.Items())
}
