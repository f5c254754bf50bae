package core

// UserCommand is a menu-level choice.
type UserCommand int

// The zero value is CmdNone, never a real choice.
const (
	CmdNone UserCommand = iota
	CmdNewGame
	CmdHumanPlayer
	CmdAiWeak
	CmdAiMedium
	CmdAiStrong
	CmdHelp
	CmdCredits
	CmdQuit
)

func (c UserCommand) String() string {
	switch c {
	case CmdNewGame:
		return "new game"
	case CmdHumanPlayer:
		return "human player"
	case CmdAiWeak:
		return "weak ai"
	case CmdAiMedium:
		return "medium ai"
	case CmdAiStrong:
		return "strong ai"
	case CmdHelp:
		return "help"
	case CmdCredits:
		return "credits"
	case CmdQuit:
		return "quit"
	case CmdNone:
		return "none"
	default:
		return "unknown"
	}
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionUndo
	ActionOther
)

type OtherAction int

const (
	OtherHelp OtherAction = iota
	OtherQuit
)

// PlayerAction is what a human player does on their turn. The zero value has
// Kind ActionNone and stands for no action. Coord is only meaningful for ActionMove, Other only for ActionOther.
type PlayerAction struct {
	Kind  ActionKind
	Coord Coord
	Other OtherAction
}

func MoveAction(c Coord) PlayerAction {
	return PlayerAction{Kind: ActionMove, Coord: c}
}

func UndoAction() PlayerAction {
	return PlayerAction{Kind: ActionUndo}
}

func HelpAction() PlayerAction {
	return PlayerAction{Kind: ActionOther, Other: OtherHelp}
}

func QuitAction() PlayerAction {
	return PlayerAction{Kind: ActionOther, Other: OtherQuit}
}

func (a PlayerAction) String() string {
	switch a.Kind {
	case ActionMove:
		return "move " + a.Coord.String()
	case ActionUndo:
		return "undo"
	case ActionOther:
		if a.Other == OtherQuit {
			return "quit"
		}
		return "help"
	default:
		return "none"
	}
}
