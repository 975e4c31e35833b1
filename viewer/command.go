package viewer

import (
	"fmt"
	"strings"
)

// CommandKind identifies an explorer command.
type CommandKind int

const (
	// CommandNone is the empty command. It does nothing.
	CommandNone CommandKind = iota
	// CommandQuit exits the browser.
	CommandQuit
	// CommandHTMLPreview previews the HTML rendering of a Markdown file.
	CommandHTMLPreview
	// CommandOpen opens a file with the system's default handler.
	CommandOpen
	// CommandGoto jumps to a heading in the most recent preview.
	CommandGoto
)

func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandQuit:
		return "quit"
	case CommandHTMLPreview:
		return "hp"
	case CommandOpen:
		return "open"
	case CommandGoto:
		return "goto"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// A Command is a parsed explorer command line.
type Command struct {
	Kind CommandKind
	// Arg is the command's argument, if any.
	Arg string
}

// ParseCommand parses an explorer command line, without its leading ':'. Blank input yields CommandNone.
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{Kind: CommandNone}, nil
	}

	switch {
	case len(fields) == 1 && (fields[0] == "q" || fields[0] == "quit"):
		return Command{Kind: CommandQuit}, nil
	case len(fields) == 2 && fields[0] == "hp":
		return Command{Kind: CommandHTMLPreview, Arg: fields[1]}, nil
	case len(fields) == 2 && fields[0] == "open":
		return Command{Kind: CommandOpen, Arg: fields[1]}, nil
	case len(fields) == 2 && fields[0] == "goto":
		return Command{Kind: CommandGoto, Arg: fields[1]}, nil
	default:
		return Command{}, fmt.Errorf("%w: %v", ErrUnknownCommand, strings.TrimSpace(text))
	}
}
