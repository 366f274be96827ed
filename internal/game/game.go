// Package game holds the pieces of game state that console commands operate
// on: the block catalog, per-user inventories, and the session controller.
// The command interpreter core passes these through to handlers without
// touching them itself.
package game

// World is the world a session runs in. Nothing in the interpreter core
// reads or writes it; it exists so that commands which do care about the
// world have a place to reach it.
type World struct {
	// Name is the display name of the world.
	Name string

	// Spawn is the label of the location users start at.
	Spawn string

	// Catalog is the set of blocks this world recognizes.
	Catalog Catalog
}

// Controller is the session controller that commands reach for world-level
// toggles.
type Controller struct {
	// TimeOfDay is the current hour of the in-game day, 0 through 24
	// inclusive. Range checking is done by the commands that write it, not
	// here.
	TimeOfDay int
}
