package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/internal/kv"
	"github.com/medzone/storefront/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(kv.NewMemoryStore(), zap.NewNop())
}

func paracetamol() domain.Product {
	return domain.Product{
		ID:       "med-001",
		Name:     "Paracetamol 500mg",
		Price:    100,
		Images:   []string{"https://cdn.example.com/paracetamol.jpg"},
		Category: "Pain Relief",
	}
}

func ibuprofen() domain.Product {
	return domain.Product{
		ID:       "med-002",
		Name:     "Ibuprofen 200mg",
		Price:    150,
		Category: "Pain Relief",
	}
}

func TestStore_AddOrIncrement(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new line with product snapshot", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))

		lines := store.Load(ctx)
		require.Len(t, lines, 1)
		assert.Equal(t, "med-001", lines[0].ProductID)
		assert.Equal(t, "Paracetamol 500mg", lines[0].Name)
		assert.Equal(t, 100.0, lines[0].UnitPrice)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "https://cdn.example.com/paracetamol.jpg", lines[0].ImageRef)
		assert.Equal(t, "Pain Relief", lines[0].CategoryRef)
	})

	t.Run("merges repeated adds into one line per product", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))
		require.NoError(t, store.AddOrIncrement(ctx, ibuprofen(), 1))
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 3))

		lines := store.Load(ctx)
		require.Len(t, lines, 2)
		assert.Equal(t, 5, lines[0].Quantity, "quantity should be the sum of increments")
		assert.Equal(t, 1, lines[1].Quantity)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddOrIncrement(ctx, ibuprofen(), 1))
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 1))
		require.NoError(t, store.AddOrIncrement(ctx, ibuprofen(), 1))

		lines := store.Load(ctx)
		require.Len(t, lines, 2)
		assert.Equal(t, "med-002", lines[0].ProductID)
		assert.Equal(t, "med-001", lines[1].ProductID)
	})

	t.Run("treats quantities below 1 as 1", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 0))

		lines := store.Load(ctx)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("keeps the merge invariant under concurrent adds", func(t *testing.T) {
		store := newTestStore(t)

		const adders = 16
		start := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(adders)
		for i := 0; i < adders; i++ {
			go func() {
				defer wg.Done()
				<-start
				assert.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 1))
			}()
		}
		close(start)
		wg.Wait()

		lines := store.Load(ctx)
		require.Len(t, lines, 1, "concurrent adds of one product must merge into one line")
		assert.Equal(t, adders, lines[0].Quantity, "no increment may be lost")
	})

	t.Run("survives a reload through the same backend", func(t *testing.T) {
		backend := kv.NewMemoryStore()
		store := NewStore(backend, zap.NewNop())
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))

		// A second store over the same backend sees the same cart
		reopened := NewStore(backend, zap.NewNop())
		lines := reopened.Load(ctx)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("returns empty sequence when nothing persisted", func(t *testing.T) {
		store := newTestStore(t)
		assert.Empty(t, store.Load(ctx))
	})

	t.Run("treats an unreadable document as an empty cart", func(t *testing.T) {
		backend := kv.NewMemoryStore()
		require.NoError(t, backend.Set(ctx, StorageKey, []byte("{not json")))

		store := NewStore(backend, zap.NewNop())
		assert.Empty(t, store.Load(ctx))
	})
}

func TestStore_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the quantity at the given position", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))

		require.NoError(t, store.SetQuantity(ctx, 0, 7))
		assert.Equal(t, 7, store.Load(ctx)[0].Quantity)
	})

	t.Run("clamps quantities below 1 to 1", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))

		require.NoError(t, store.SetQuantity(ctx, 0, 0))
		assert.Equal(t, 1, store.Load(ctx)[0].Quantity)

		require.NoError(t, store.SetQuantity(ctx, 0, -4))
		assert.Equal(t, 1, store.Load(ctx)[0].Quantity)
	})

	t.Run("rejects an out-of-range index without touching other lines", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))
		require.NoError(t, store.AddOrIncrement(ctx, ibuprofen(), 1))

		err := store.SetQuantity(ctx, 5, 3)
		var idxErr *errors.ErrLineIndex
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, 5, idxErr.Index)
		assert.Equal(t, 2, idxErr.Len)

		lines := store.Load(ctx)
		require.Len(t, lines, 2)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 1, lines[1].Quantity)

		err = store.SetQuantity(ctx, -1, 3)
		require.ErrorAs(t, err, &idxErr)
	})
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the line at the given position", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))
		require.NoError(t, store.AddOrIncrement(ctx, ibuprofen(), 1))

		require.NoError(t, store.Remove(ctx, 0))

		lines := store.Load(ctx)
		require.Len(t, lines, 1)
		assert.Equal(t, "med-002", lines[0].ProductID)
	})

	t.Run("rejects an out-of-range index", func(t *testing.T) {
		store := newTestStore(t)

		var idxErr *errors.ErrLineIndex
		require.ErrorAs(t, store.Remove(ctx, 0), &idxErr)
	})
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2))
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, store.Load(ctx))
}

func TestStore_Total(t *testing.T) {
	ctx := context.Background()

	t.Run("is zero for an empty cart", func(t *testing.T) {
		store := newTestStore(t)
		assert.Equal(t, 0.0, store.Total(ctx))
	})

	t.Run("sums unit price times quantity over all lines", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.AddOrIncrement(ctx, paracetamol(), 2)) // 200
		require.NoError(t, store.AddOrIncrement(ctx, ibuprofen(), 3))   // 450

		assert.Equal(t, 650.0, store.Total(ctx))
	})
}
