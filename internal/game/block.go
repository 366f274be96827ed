package game

import (
	"fmt"
	"sort"
)

// Block is a single placeable block type known to the game.
type Block struct {

	// ID is the numeric identifier used to refer to the block in commands.
	// IDs may be fractional; variants of a base block share its integer part
	// and get a fractional suffix.
	ID float64

	// Name is the short display name of the block.
	Name string

	// Help is an optional longer description of the block shown in help
	// output.
	Help string
}

func (b Block) String() string {
	return fmt.Sprintf("Block(%v, %q)", b.ID, b.Name)
}

// Catalog is the set of blocks a world recognizes, indexed by ID. It is
// immutable once built and safe for concurrent readers.
type Catalog struct {
	blocks map[float64]Block
}

// NewCatalog builds a Catalog from the given blocks. Every block must have a
// name and a non-negative ID, and no two blocks may share an ID; a non-nil
// error is returned otherwise.
func NewCatalog(blocks []Block) (Catalog, error) {
	cat := Catalog{blocks: make(map[float64]Block, len(blocks))}

	for _, b := range blocks {
		if b.Name == "" {
			return cat, fmt.Errorf("block with ID %v: name must not be empty", b.ID)
		}
		if b.ID < 0 {
			return cat, fmt.Errorf("block %q: ID must not be negative", b.Name)
		}
		if dupe, ok := cat.blocks[b.ID]; ok {
			return cat, fmt.Errorf("block %q: ID %v already used by %q", b.Name, b.ID, dupe.Name)
		}
		cat.blocks[b.ID] = b
	}

	return cat, nil
}

// Get returns the block with the given ID, if the catalog contains one.
func (cat Catalog) Get(id float64) (Block, bool) {
	b, ok := cat.blocks[id]
	return b, ok
}

// Len returns how many blocks the catalog contains.
func (cat Catalog) Len() int {
	return len(cat.blocks)
}

// All returns every block in the catalog, sorted by ID.
func (cat Catalog) All() []Block {
	all := make([]Block, 0, len(cat.blocks))
	for _, b := range cat.blocks {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all
}

// DefaultCatalog returns the compiled-in block catalog used when no block
// data file is provided.
func DefaultCatalog() Catalog {
	cat, err := NewCatalog([]Block{
		{ID: 1, Name: "Stone"},
		{ID: 2, Name: "Grass"},
		{ID: 3, Name: "Dirt"},
		{ID: 5, Name: "Planks"},
		{ID: 5.2, Name: "Birch Planks"},
		{ID: 17, Name: "Log"},
		{ID: 20, Name: "Glass"},
	})
	if err != nil {
		// the compiled-in catalog not building is a bug in this file
		panic(fmt.Sprintf("default catalog: %v", err))
	}
	return cat
}
