// Package viewer holds the state behind the terminal browser: a directory explorer, the explorer's command line,
// scroll arithmetic, and the loading of files into previews. It has no dependency on any particular terminal library.
package viewer

import "errors"

var (
	// ErrNotFound is returned when a named file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrNotMarkdown is returned when a file that is not Markdown is opened for preview.
	ErrNotMarkdown = errors.New("only Markdown files can be previewed")
	// ErrUnknownCommand is returned for unrecognized explorer commands.
	ErrUnknownCommand = errors.New("unknown command")
)
