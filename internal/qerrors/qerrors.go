// Package qerrors defines the errors that the command interpreter reports to
// the player: arguments that a matched command rejects, input that looks like
// a command but matches no known one, and command definitions rejected when
// the registry is built.
package qerrors

import (
	"errors"
	"fmt"
)

// commandError is an error raised by a command handler when the arguments it
// was matched with fail validation. It keeps the raw command text and a
// human-readable message so that callers can show the player exactly what was
// rejected and why.
type commandError struct {
	text  string
	human string
	wrap  error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("command failed on input %q: %s", e.text, e.human)
}

// GameMessage shows the message that should be displayed on the console to
// describe the error.
func (e *commandError) GameMessage() string {
	if e.human == "" {
		return "Bad command: " + e.text
	}
	return fmt.Sprintf("%s [%s]", e.human, e.text)
}

// Unwrap gives the error that the command error wraps, if it wraps one.
func (e *commandError) Unwrap() error {
	return e.wrap
}

func (e *commandError) commandText() string {
	return e.text
}

// unknownError is the error for input that carried the command sentinel but
// matched no registered command. It keeps the original input, sentinel
// included.
type unknownError struct {
	text string
}

func (e *unknownError) Error() string {
	return fmt.Sprintf("no registered command matches input %q", e.text)
}

// GameMessage shows the message that should be displayed on the console to
// describe the error.
func (e *unknownError) GameMessage() string {
	return "Bad command: " + e.text
}

func (e *unknownError) commandText() string {
	return e.text
}

// Command returns a new command error carrying the raw command text it was
// raised for and the message to show the player.
func Command(text, message string) error {
	return &commandError{text: text, human: message}
}

// Commandf returns a new command error whose player-facing message is built
// from the given format string and its arguments.
func Commandf(text, format string, a ...interface{}) error {
	return Command(text, fmt.Sprintf(format, a...))
}

// WrapCommandf returns a new command error like Commandf that additionally
// wraps the given error.
func WrapCommandf(e error, text, format string, a ...interface{}) error {
	return &commandError{text: text, human: fmt.Sprintf(format, a...), wrap: e}
}

// Unknown returns a new error for sentinel-marked input that no registered
// command pattern matched. text must be the original input with the sentinel
// still attached.
func Unknown(text string) error {
	return &unknownError{text: text}
}

// IsUnknown reports whether err is an unknown-command error created by
// Unknown.
func IsUnknown(err error) bool {
	var uErr *unknownError
	return errors.As(err, &uErr)
}

// IsCommand reports whether err is a command error raised by a handler via
// Command, Commandf, or WrapCommandf.
func IsCommand(err error) bool {
	var cErr *commandError
	return errors.As(err, &cErr)
}

// CommandText returns the raw command text that err was raised for. ok is
// false if err is not one of the error types defined in qerrors.
func CommandText(err error) (text string, ok bool) {
	var tErr interface{ commandText() string }
	if errors.As(err, &tErr) {
		return tErr.commandText(), true
	}
	return "", false
}

// Registrationf returns an error describing why the named command definition
// was rejected at registry build time.
func Registrationf(name string, format string, a ...interface{}) error {
	return fmt.Errorf("register command %q: %s", name, fmt.Sprintf(format, a...))
}

// GameMessage gets the message to display on the console for the given
// error. If it is one of the types defined in qerrors, the special game
// message is returned. Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	if gm, ok := err.(interface{ GameMessage() string }); ok {
		return gm.GameMessage()
	}
	return err.Error()
}
