/*
Qsh starts an interactive Quarry console session.

It reads lines from stdin and writes to stdout until the session ends. Lines
beginning with the command sentinel (by default "/") are interpreted as game
commands; all other lines are treated as ordinary chat and echoed back.

Usage:

	qsh [flags]

The flags are:

	-v, --version
		Give the current version of Quarry and then exit.

	-b, --blocks FILE
		Use the provided QBD block data file for the world's block catalog.
		If not given, will default to the value of environment variable
		QUARRY_BLOCKS, and if that is not given, a compiled-in catalog is
		used.

	-s, --sentinel CHAR
		Use the provided character to mark a line of input as a command. Must
		be exactly one character. If not given, will default to the value of
		environment variable QUARRY_SENTINEL, and if that is not given, "/"
		is used.

	-u, --user NAME
		The display name of the console user, shown in echoed chat. Defaults
		to "player".

	-d, --direct
		Force reading directly from stdin as opposed to using GNU readline
		based routines for reading command input even if launched in a tty
		with stdin and stdout.

Once a session has started, type "/help" for an explanation of the commands.
To exit, type "/quit".
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/quarry"
	"github.com/dekarrin/quarry/internal/game"
	"github.com/dekarrin/quarry/internal/qbd"
	"github.com/dekarrin/quarry/internal/version"
	"github.com/spf13/pflag"
)

// EnvBlocks is the environment variable consulted for the block data file
// when the --blocks flag is not given.
const EnvBlocks = "QUARRY_BLOCKS"

// EnvSentinel is the environment variable consulted for the command sentinel
// when the --sentinel flag is not given.
const EnvSentinel = "QUARRY_SENTINEL"

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitSessionError indicates an unsuccessful program execution due to a
	// problem during the session.
	ExitSessionError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode   = ExitSuccess
	flagVersion  = pflag.BoolP("version", "v", false, "Give the current version of Quarry and then exit")
	flagBlocks   = pflag.StringP("blocks", "b", "", "The QBD block data file that contains the definition of the world's blocks")
	flagSentinel = pflag.StringP("sentinel", "s", "", "The character that marks a line of input as a command")
	flagUser     = pflag.StringP("user", "u", "player", "The display name of the console user")
	flagDirect   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	blocksFile := *flagBlocks
	if blocksFile == "" {
		blocksFile = os.Getenv(EnvBlocks)
	}

	sentinelStr := *flagSentinel
	if sentinelStr == "" {
		sentinelStr = os.Getenv(EnvSentinel)
	}
	var sentinel rune
	if sentinelStr != "" {
		runes := []rune(sentinelStr)
		if len(runes) != 1 {
			fmt.Fprintf(os.Stderr, "ERROR: sentinel must be exactly one character\n")
			returnCode = ExitInitError
			return
		}
		sentinel = runes[0]
	}

	var catalog game.Catalog
	if blocksFile != "" {
		var err error
		catalog, err = qbd.LoadBlocksFile(blocksFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	} else {
		catalog = game.DefaultCatalog()
	}

	eng, initErr := quarry.New(os.Stdin, os.Stdout, quarry.Options{
		Catalog:     catalog,
		Sentinel:    sentinel,
		UserName:    *flagUser,
		ForceDirect: *flagDirect,
	})
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	if err := eng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}
}
