package command

// Reader is a type that can be used for getting lines of command input.
type Reader interface {

	// ReadCommand reads a single line of user input. It will block until one
	// is ready. If there is an error or input is at end (EOF), the returned
	// string will be empty, otherwise it will always be non-empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was
	// encountered on a call but some input was received, the input will be
	// returned and error will be nil, and the next call to ReadCommand will
	// return "", io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean up the resources
	// created by the Reader. It should be called at least once when the
	// Reader is no longer needed.
	Close() error
}
