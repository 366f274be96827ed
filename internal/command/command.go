// Package command implements the slash-command interpreter core: a registry
// of pattern-matched command definitions, and the dispatcher that decides
// whether a line of input is a command at all and routes it to the one
// definition that handles it.
package command

import "github.com/dekarrin/quarry/internal/game"

// Context is the game state a command runs against. The interpreter core
// hands it through to handlers unmodified; only the handlers themselves
// mutate anything in it.
type Context struct {

	// User is the player who typed the command.
	User *game.User

	// World is the world the session is running in.
	World *game.World

	// Controller is the session controller for world-level toggles such as
	// the time of day.
	Controller *game.Controller
}

// Command is a single parsed invocation, bound to the input text it was
// parsed from and the context it will run against. Instances live for
// exactly one dispatch and are discarded after Execute returns.
type Command interface {

	// Execute runs the command with the arguments its definition's pattern
	// captured. args holds every capture group that participated in the
	// match, in group order; groups that did not participate are absent
	// entirely, shifting later groups down. named holds the named groups
	// that participated, and a participating named group is present in both
	// args and named.
	//
	// A nil returned value means the command completed with nothing to
	// report. Errors from Execute are passed to the caller of the dispatch
	// untouched.
	Execute(args []string, named map[string]string) (interface{}, error)
}

// Factory produces the Command instance for one dispatch. text is the input
// the command was matched against, with the sentinel already stripped and
// whitespace trimmed. Factories must not touch game state; all mutation
// belongs in Execute.
type Factory func(text string, ctx Context) Command

// Definition declares one recognizable command: the pattern that identifies
// it, the help shown for it, and the factory that binds an invocation of it.
// Definitions are registered once at startup and never change after that.
type Definition struct {

	// Name uniquely identifies the definition within its registry.
	Name string

	// Pattern is the regular expression that recognizes and decomposes the
	// command's text. It is matched against the full sentinel-stripped
	// input; anchors are added if not already present. Capture groups become
	// the arguments to Execute, and (?P<name>...) groups are additionally
	// reported by name.
	Pattern string

	// Help is the human-readable usage line for the command.
	Help string

	// New creates the Command instance for one dispatch.
	New Factory
}
