package command

import (
	"strings"

	"github.com/dekarrin/quarry/internal/qerrors"
)

// HelpDefinition returns the definition of the help command, which renders
// the help lines of every command registered in reg, or of a single one when
// a topic is given.
//
// The registry may still be empty when the definition is created; it is only
// read when the command executes, so HelpDefinition can be called on the
// registry it is itself about to be registered in.
func HelpDefinition(reg *Registry) Definition {
	return Definition{
		Name:    "help",
		Pattern: `help(?:\s+(?P<topic>\S+))?`,
		Help:    "help [command]: Show help for all commands, or for just the named one",
		New: func(text string, ctx Context) Command {
			return &helpCommand{text: text, reg: reg}
		},
	}
}

type helpCommand struct {
	text string
	reg  *Registry
}

// Execute renders the requested help and returns it as the command's value;
// displaying it is up to whatever receives the dispatch outcome. The topic,
// when given, arrives through the pattern's named group.
func (c *helpCommand) Execute(args []string, named map[string]string) (interface{}, error) {
	topic, hasTopic := named["topic"]

	if !hasTopic {
		var sb strings.Builder
		sb.WriteString("Commands:\n")
		for _, def := range c.reg.Definitions() {
			sb.WriteString("  ")
			sb.WriteString(def.Help)
			sb.WriteString("\n")
		}
		return sb.String(), nil
	}

	def, ok := c.reg.Lookup(topic)
	if !ok {
		return nil, qerrors.Commandf(c.text, "No help available for %q", topic)
	}
	return def.Help, nil
}
