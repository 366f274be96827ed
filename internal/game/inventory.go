package game

import (
	"errors"
	"fmt"
)

// ErrNoItem is the error returned when an inventory operation refers to a
// block ID that the catalog does not contain.
var ErrNoItem = errors.New("no block with that ID exists")

// Inventory is the collection of blocks a user is carrying, keyed by block
// ID. Every added ID is validated against the catalog the inventory was
// created with.
type Inventory struct {
	catalog Catalog
	counts  map[float64]int
}

// NewInventory creates an empty Inventory that validates against the given
// catalog.
func NewInventory(catalog Catalog) *Inventory {
	return &Inventory{
		catalog: catalog,
		counts:  make(map[float64]int),
	}
}

// AddItem adds qty of the block with the given ID to the inventory. If the
// catalog has no block with that ID, an error wrapping ErrNoItem is returned
// and the inventory is unchanged. qty must be positive.
func (inv *Inventory) AddItem(id float64, qty int) error {
	if _, ok := inv.catalog.Get(id); !ok {
		return fmt.Errorf("add block %v: %w", id, ErrNoItem)
	}
	if qty < 1 {
		return fmt.Errorf("add block %v: quantity must be at least 1, not %d", id, qty)
	}

	inv.counts[id] += qty
	return nil
}

// Count returns how many of the block with the given ID the inventory holds.
func (inv *Inventory) Count(id float64) int {
	return inv.counts[id]
}
