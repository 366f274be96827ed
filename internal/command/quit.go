package command

// SignalQuit is the value returned by the quit command. The interpreter core
// attaches no meaning to it; the engine running the session is expected to
// check dispatch outcomes for it and stop its read loop.
type SignalQuit struct{}

// QuitDefinition returns the definition of the quit command, which requests
// that the running session end by returning SignalQuit.
func QuitDefinition() Definition {
	return Definition{
		Name:    "quit",
		Pattern: `quit`,
		Help:    "quit: End the session",
		New: func(text string, ctx Context) Command {
			return quitCommand{}
		},
	}
}

type quitCommand struct{}

func (c quitCommand) Execute(args []string, named map[string]string) (interface{}, error) {
	return SignalQuit{}, nil
}
