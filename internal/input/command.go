// Package input turns device events into game commands. Adapters for each
// device are attached to a Dispatcher, which forwards their commands to a
// single sink.
package input

import "github.com/vovakirdan/tui-2048/internal/grid"

// CommandKind identifies what the player asked for.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdUndo
	CmdRestart
	CmdQuit
	CmdToggleHelp
)

// Command is a device-independent player intent.
type Command struct {
	Kind CommandKind
	Dir  grid.Direction // only for CmdMove
}

// Move returns a move command for dir.
func Move(dir grid.Direction) Command {
	return Command{Kind: CmdMove, Dir: dir}
}

var (
	Undo       = Command{Kind: CmdUndo}
	Restart    = Command{Kind: CmdRestart}
	Quit       = Command{Kind: CmdQuit}
	ToggleHelp = Command{Kind: CmdToggleHelp}
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c.Kind {
	case CmdMove:
		return "move " + c.Dir.String()
	case CmdUndo:
		return "undo"
	case CmdRestart:
		return "restart"
	case CmdQuit:
		return "quit"
	case CmdToggleHelp:
		return "help"
	default:
		return "unknown"
	}
}
