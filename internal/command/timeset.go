package command

import (
	"strconv"

	"github.com/dekarrin/quarry/internal/qerrors"
)

// TimeSetDefinition returns the definition of the time set command, which
// sets the controller's time of day.
//
// The pattern requires digits, so input such as "time set noon" does not
// match at all; only values that are numeric but out of range reach the
// handler's validation.
func TimeSetDefinition() Definition {
	return Definition{
		Name:    "time set",
		Pattern: `time set (\d+)`,
		Help:    "time set <number>: Set the time of day 00-24",
		New: func(text string, ctx Context) Command {
			return &timeSetCommand{text: text, ctx: ctx}
		},
	}
}

type timeSetCommand struct {
	text string
	ctx  Context
}

// Execute validates the captured hour and writes it to the controller. The
// accepted range is 0 through 24 inclusive.
func (c *timeSetCommand) Execute(args []string, named map[string]string) (interface{}, error) {
	tod, err := strconv.Atoi(args[0])
	if err != nil || tod < 0 || tod > 24 {
		return nil, qerrors.Command(c.text, "Time should be a number between 0 and 24")
	}

	c.ctx.Controller.TimeOfDay = tod
	return nil, nil
}
