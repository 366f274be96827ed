// Package input contains the line readers the console engine gets its chat
// and command input from.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectReader implements command.Reader and reads lines from any generic
// input stream. It can be used with any io.Reader but does not sanitize the
// input of control and escape sequences, so it is best suited to piped or
// scripted input.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader creates a DirectReader with a buffered reader opened on r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// ReadCommand reads the next non-blank line from the stream, with
// surrounding whitespace trimmed. At end of input it returns "" and io.EOF;
// any other read error is returned as-is with an empty string.
func (dr *DirectReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
	}

	return line, nil
}

// Close cleans up resources associated with the DirectReader. The
// DirectReader holds none at present, but callers should treat it as though
// it must have Close called on it, as that may change.
func (dr *DirectReader) Close() error {
	return nil
}

// InteractiveReader implements command.Reader and reads lines using a go
// implementation of the GNU Readline library. This keeps input clear of
// typing and editing escape sequences and gives the user line editing and
// command history. It should in general only be used when connected directly
// to a TTY.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader creates an InteractiveReader showing the given
// prompt. If historyFile is non-empty, command history is persisted there
// across sessions. The returned reader must have Close called on it before
// disposal to properly tear down readline resources.
func NewInteractiveReader(prompt string, historyFile string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{rl: rl}, nil
}

// ReadCommand reads the next non-blank line from the terminal, with
// surrounding whitespace trimmed. At end of input it returns "" and io.EOF;
// any other read error is returned as-is with an empty string.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
	}

	return line, nil
}

// Close cleans up readline resources associated with the InteractiveReader.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}
