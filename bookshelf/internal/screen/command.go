package screen

import (
	"strconv"
	"strings"
)

type CommandKind uint8

const (
	CmdSearch CommandKind = iota
	CmdToggleRTL
	CmdOpen
	CmdQuit
	CmdUnknown
)

type Command struct {
	Kind  CommandKind
	Query string
	// Index is 1-based into the visible list.
	Index int
	Raw   string
}

// ParseCommand reads one input line. Lines starting with ':' are commands,
// '::' escapes a query that starts with ':', anything else replaces the
// search query.
func ParseCommand(line string) Command {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, ":") {
		return Command{Kind: CmdSearch, Query: line, Raw: line}
	}
	if strings.HasPrefix(line, "::") {
		return Command{Kind: CmdSearch, Query: line[1:], Raw: line}
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return Command{Kind: CmdUnknown, Raw: line}
	}
	switch fields[0] {
	case "q", "quit":
		return Command{Kind: CmdQuit, Raw: line}
	case "rtl":
		return Command{Kind: CmdToggleRTL, Raw: line}
	case "open", "o":
		if len(fields) != 2 {
			return Command{Kind: CmdUnknown, Raw: line}
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return Command{Kind: CmdUnknown, Raw: line}
		}
		return Command{Kind: CmdOpen, Index: n, Raw: line}
	}
	return Command{Kind: CmdUnknown, Raw: line}
}
