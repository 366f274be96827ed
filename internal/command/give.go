package command

import (
	"errors"
	"strconv"

	"github.com/dekarrin/quarry/internal/game"
	"github.com/dekarrin/quarry/internal/qerrors"
)

// GiveDefinition returns the definition of the give command, which adds a
// quantity of a block to the invoking user's inventory.
//
// The pattern captures the block identifier loosely so that a non-numeric
// identifier still matches and can be rejected with a useful message,
// instead of falling through to an unknown-command error.
func GiveDefinition() Definition {
	return Definition{
		Name:    "give",
		Pattern: `give (\S+)(?:\s+(\S+))?`,
		Help:    "give <block_id> [amount]: Give a specified amount (default of 1) of the item to the player",
		New: func(text string, ctx Context) Command {
			return &giveCommand{text: text, ctx: ctx}
		},
	}
}

type giveCommand struct {
	text string
	ctx  Context
}

// Execute parses the captured block identifier and optional amount and adds
// the blocks to the invoking user's inventory. When the optional amount
// group was absent from the match, the amount defaults to 1.
func (c *giveCommand) Execute(args []string, named map[string]string) (interface{}, error) {
	blockID := args[0]
	amount := "1"
	if len(args) > 1 {
		amount = args[1]
	}

	id, err := strconv.ParseFloat(blockID, 64)
	if err != nil {
		return nil, qerrors.Command(c.text, "ID should be a number. Amount must be an integer.")
	}
	qty, err := strconv.Atoi(amount)
	if err != nil {
		return nil, qerrors.Command(c.text, "ID should be a number. Amount must be an integer.")
	}

	if err := c.ctx.User.Inventory.AddItem(id, qty); err != nil {
		if errors.Is(err, game.ErrNoItem) {
			return nil, qerrors.WrapCommandf(err, c.text, "ID %s unknown.", blockID)
		}
		return nil, qerrors.WrapCommandf(err, c.text, "Amount must be at least 1.")
	}

	return nil, nil
}
