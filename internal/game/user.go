package game

import "github.com/google/uuid"

// User is one player in a session. Commands that affect a specific player
// receive the invoking User through their context.
type User struct {

	// ID is the unique identifier of the user, assigned at creation.
	ID uuid.UUID

	// Name is the display name of the user, shown in chat output.
	Name string

	// Inventory is the blocks the user is carrying.
	Inventory *Inventory
}

// NewUser creates a User with a fresh ID, the given display name, and an
// empty inventory validating against the given catalog.
func NewUser(name string, catalog Catalog) *User {
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Inventory: NewInventory(catalog),
	}
}
