package command

import (
	"strings"

	"github.com/dekarrin/quarry/internal/qerrors"
)

// DefaultSentinel is the leading character that marks a line of input as a
// command rather than ordinary chat, unless a dispatcher is configured with
// a different one.
const DefaultSentinel = '/'

// Outcome reports what a Dispatcher did with a line of input. It is one of
// three shapes: not handled (the input was not a command), handled (a
// command ran and returned nothing), or handled with a value (a command ran
// and returned one).
type Outcome struct {
	handled  bool
	hasValue bool
	value    interface{}
}

// NotHandled is the outcome for input that is not a command at all. Callers
// receiving it are expected to route the input elsewhere, such as to chat.
var NotHandled = Outcome{}

// Handled is the outcome for a command that ran and returned no value.
var Handled = Outcome{handled: true}

// HandledWithValue wraps a handler's non-nil returned value in an Outcome.
func HandledWithValue(v interface{}) Outcome {
	return Outcome{handled: true, hasValue: true, value: v}
}

// WasHandled reports whether the input was recognized and run as a command.
func (o Outcome) WasHandled() bool {
	return o.handled
}

// Value returns the value the command's handler returned, if it returned
// one.
func (o Outcome) Value() (v interface{}, ok bool) {
	return o.value, o.hasValue
}

// Dispatcher is the single entry point that other subsystems call with raw
// chat or console text. It decides command-ness by the leading sentinel,
// delegates matching to its registry, invokes the matched command, and
// normalizes the result into an Outcome.
type Dispatcher struct {
	reg      *Registry
	sentinel rune
}

// NewDispatcher creates a Dispatcher over the given registry. sentinel is
// the character that marks input as a command; pass 0 to use
// DefaultSentinel.
func NewDispatcher(reg *Registry, sentinel rune) *Dispatcher {
	if sentinel == 0 {
		sentinel = DefaultSentinel
	}
	return &Dispatcher{reg: reg, sentinel: sentinel}
}

// Sentinel returns the character that marks input as a command.
func (d *Dispatcher) Sentinel() rune {
	return d.sentinel
}

// Execute runs the command in text against ctx, if text holds one.
//
// Text without the leading sentinel is never matched against any pattern;
// it gets the NotHandled outcome and a nil error. Text with the sentinel is
// stripped of it and of surrounding whitespace and handed to the registry;
// if no definition matches, an unknown-command error carrying the original
// text (sentinel included) is returned. Otherwise the matched command runs
// with the captured arguments: a nil returned value becomes the Handled
// outcome and a non-nil one is carried in a HandledWithValue outcome.
// Errors from the handler itself are returned as-is, never converted or
// swallowed.
func (d *Dispatcher) Execute(text string, ctx Context) (Outcome, error) {
	sentinel := string(d.sentinel)
	if !strings.HasPrefix(text, sentinel) {
		return NotHandled, nil
	}

	stripped := strings.TrimSpace(text[len(sentinel):])

	cmd, m, ok := d.reg.Parse(stripped, ctx)
	if !ok {
		return NotHandled, qerrors.Unknown(text)
	}

	ret, err := cmd.Execute(m.Args, m.Named)
	if err != nil {
		return NotHandled, err
	}

	if ret == nil {
		return Handled, nil
	}
	return HandledWithValue(ret), nil
}
