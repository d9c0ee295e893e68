package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/internal/kv"
	"github.com/medzone/storefront/pkg/errors"
)

// StorageKey is the single well-known key the serialized cart lives under
const StorageKey = "cart"

// Store is the single source of truth for what the current visitor intends
// to buy. Every view goes through it; nothing else touches the storage key.
// The cart is an ordered sequence of lines, at most one line per product ID.
//
// Every mutation is a read-modify-write of the whole document, so mutations
// hold a mutex: concurrent HTTP handlers must not interleave between the
// load and the persist, or increments get lost.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
	mu     sync.Mutex
}

// NewStore creates a cart store over the given key-value backend
func NewStore(kvStore kv.Store, logger *zap.Logger) *Store {
	return &Store{
		kv:     kvStore,
		logger: logger,
	}
}

// Load returns the current ordered sequence of cart lines.
// A missing key and an unreadable document both yield an empty cart: the
// visitor is never shown a storage error, only an empty cart. Corruption is
// still logged so the two cases can be told apart operationally.
func (s *Store) Load(ctx context.Context) []domain.CartLine {
	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if _, ok := err.(*errors.ErrKeyNotFound); !ok {
			s.logger.Warn("Failed to read cart, treating as empty", zap.Error(err))
		}
		return []domain.CartLine{}
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Warn("Stored cart is unreadable, treating as empty", zap.Error(err))
		return []domain.CartLine{}
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines
}

// AddOrIncrement merges a product into the cart. If a line for the product
// already exists its quantity grows by qty, otherwise a new line is appended,
// preserving insertion order. Quantities below 1 count as 1.
func (s *Store) AddOrIncrement(ctx context.Context, product domain.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.Load(ctx)

	merged := false
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}

	if !merged {
		line := domain.CartLine{
			ProductID:   product.ID,
			Name:        product.Name,
			UnitPrice:   product.Price,
			Quantity:    qty,
			CategoryRef: product.Category,
		}
		if len(product.Images) > 0 {
			line.ImageRef = product.Images[0]
		}
		lines = append(lines, line)
	}

	return s.persist(ctx, lines)
}

// SetQuantity replaces the quantity of the line at index.
// Values below 1 are clamped to 1; removal stays an explicit operation.
// An out-of-range index leaves the cart untouched.
func (s *Store) SetQuantity(ctx context.Context, index, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.Load(ctx)
	if index < 0 || index >= len(lines) {
		return &errors.ErrLineIndex{Index: index, Len: len(lines)}
	}

	if qty < 1 {
		qty = 1
	}
	lines[index].Quantity = qty

	return s.persist(ctx, lines)
}

// Remove deletes the line at index
func (s *Store) Remove(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.Load(ctx)
	if index < 0 || index >= len(lines) {
		return &errors.ErrLineIndex{Index: index, Len: len(lines)}
	}

	lines = append(lines[:index], lines[index+1:]...)

	return s.persist(ctx, lines)
}

// Clear empties the stored sequence. Used after successful order placement.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kv.Delete(ctx, StorageKey)
}

// Total returns the sum of unit price times quantity over the current cart
func (s *Store) Total(ctx context.Context) float64 {
	return TotalOf(s.Load(ctx))
}

// TotalOf computes the total of an arbitrary line sequence
func TotalOf(lines []domain.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}

func (s *Store) persist(ctx context.Context, lines []domain.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, StorageKey, data)
}
