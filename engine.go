// Package quarry contains a console-driven engine for reading chat and
// slash-command input and applying it to a running game session until the
// user quits.
package quarry

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/quarry/internal/command"
	"github.com/dekarrin/quarry/internal/game"
	"github.com/dekarrin/quarry/internal/input"
	"github.com/dekarrin/quarry/internal/qerrors"
	"github.com/dekarrin/rosed"
)

const consoleOutputWidth = 80

// Options configure the creation of an Engine. The zero value is usable and
// gives an engine with the default catalog, the default sentinel, and a
// generic user name.
type Options struct {

	// Catalog is the block catalog of the session's world. If it holds no
	// blocks, the compiled-in default catalog is used.
	Catalog game.Catalog

	// Sentinel is the character marking a line of input as a command. 0
	// selects the default, '/'.
	Sentinel rune

	// UserName is the display name of the console user, shown in echoed
	// chat. Empty selects "player".
	UserName string

	// ForceDirect forces reading directly from the input stream even when it
	// would be possible to use readline-based input.
	ForceDirect bool
}

// Engine contains the things needed to run a command session from an
// interactive shell attached to an input stream and an output stream.
type Engine struct {
	disp    *command.Dispatcher
	ctx     command.Context
	in      command.Reader
	out     *bufio.Writer
	running bool
}

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream
// and a buffered writer on the output stream.
//
// If nil is given for the input stream, input is read from stdin. If nil is
// given for the output stream, output is written to stdout.
func New(inputStream io.Reader, outputStream io.Writer, opts Options) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	catalog := opts.Catalog
	if catalog.Len() < 1 {
		catalog = game.DefaultCatalog()
	}
	userName := opts.UserName
	if userName == "" {
		userName = "player"
	}

	reg, err := command.NewDefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("building command registry: %w", err)
	}

	eng := &Engine{
		disp: command.NewDispatcher(reg, opts.Sentinel),
		ctx: command.Context{
			User: game.NewUser(userName, catalog),
			World: &game.World{
				Name:    "Quarry",
				Spawn:   "SPAWN",
				Catalog: catalog,
			},
			Controller: &game.Controller{},
		},
		out: bufio.NewWriter(outputStream),
	}

	useReadline := !opts.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		eng.in, err = input.NewInteractiveReader("> ", "")
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close input reader: %w", err)
	}

	return nil
}

// RunUntilQuit begins reading lines from the input stream and dispatching
// them until the quit command is received or input ends. Lines that are not
// commands are echoed back as chat; command errors are shown to the user and
// do not end the session.
func (eng *Engine) RunUntilQuit() error {
	sentinel := string(eng.disp.Sentinel())

	introMsg := "Welcome to the Quarry console\n"
	introMsg += "=============================\n"
	introMsg += "\n"
	introMsg += "Type " + sentinel + "help for commands; anything else is chat\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error
	// condition
	defer func() {
		eng.running = false
	}()

	for eng.running {
		line, err := eng.in.ReadCommand()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("get user input: %w", err)
		}

		outcome, err := eng.disp.Execute(line, eng.ctx)
		if err != nil {
			consoleMessage := qerrors.GameMessage(err)
			consoleMessage = rosed.Edit(consoleMessage).Wrap(consoleOutputWidth).String()
			if err := eng.write(consoleMessage + "\n"); err != nil {
				return err
			}
			continue
		}

		if !outcome.WasHandled() {
			// not a command at all; echo it back as ordinary chat
			if err := eng.write(fmt.Sprintf("<%s> %s\n", eng.ctx.User.Name, line)); err != nil {
				return err
			}
			continue
		}

		if v, ok := outcome.Value(); ok {
			if _, isQuit := v.(command.SignalQuit); isQuit {
				eng.running = false
				break
			}
			if err := eng.write(fmt.Sprintf("%v\n", v)); err != nil {
				return err
			}
		}
	}

	return eng.write("Goodbye\n")
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
